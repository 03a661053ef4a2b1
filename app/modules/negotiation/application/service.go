package negotiationservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationqueue "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/queue"
	negotiationtime "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/time_utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// matchLookup is the slice of the match module the negotiation service needs.
type matchLookup interface {
	GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error)
}

// teamResolver resolves which side of a match a user belongs to.
type teamResolver interface {
	ResolveMembership(ctx context.Context, team1ID, team2ID sharedtypes.TeamID, userRoleIDs []sharedtypes.RoleID) (*teamtypes.Membership, error)
}

// NegotiationService implements the Service interface.
type NegotiationService struct {
	repo    negotiationdb.Repository
	matches matchLookup
	teams   teamResolver
	queue   negotiationqueue.QueueService
	parser  negotiationtime.TimeParserInterface
	clock   negotiationtime.Clock
	loc     *time.Location
	ttl     time.Duration
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

// NewNegotiationService creates a new NegotiationService.
func NewNegotiationService(
	repo negotiationdb.Repository,
	matches matchLookup,
	teams teamResolver,
	queue negotiationqueue.QueueService,
	loc *time.Location,
	ttl time.Duration,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *NegotiationService {
	return &NegotiationService{
		repo:    repo,
		matches: matches,
		teams:   teams,
		queue:   queue,
		parser:  negotiationtime.NewTimeParser(),
		clock:   negotiationtime.RealClock{},
		loc:     loc,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *NegotiationService) withTelemetry(
	ctx context.Context,
	operationName string,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "NegotiationService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "NegotiationService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "NegotiationService")
			span.RecordError(err)
			result = results.OperationResult{}
		}
	}()

	result, err = op(ctx)
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, "NegotiationService")
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.Any("failure_payload", result.Failure),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, "NegotiationService")
	return result, nil
}
