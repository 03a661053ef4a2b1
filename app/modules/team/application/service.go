package teamservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TeamService implements the Service interface.
type TeamService struct {
	repo    teamdb.Repository
	roster  []teamtypes.RosterEntry
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

// NewTeamService creates a new TeamService. The roster comes from tournament
// configuration and is the source of truth for which teams exist.
func NewTeamService(
	repo teamdb.Repository,
	roster []teamtypes.RosterEntry,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *TeamService {
	return &TeamService{
		repo:    repo,
		roster:  roster,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *TeamService) withTelemetry(
	ctx context.Context,
	operationName string,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "TeamService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "TeamService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "TeamService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "TeamService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "TeamService")
	return result, nil
}
