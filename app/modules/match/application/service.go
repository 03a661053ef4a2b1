package matchservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

// teamLookup is the slice of the team module the match service needs.
type teamLookup interface {
	GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
}

// MatchService implements the Service interface.
type MatchService struct {
	repo             matchdb.Repository
	settings         matchdb.SettingsRepository
	teams            teamLookup
	organizerRoleID  sharedtypes.RoleID
	logger           *slog.Logger
	metrics          metrics.OperationMetrics
	tracer           trace.Tracer

	// renameLimiter throttles channel rename commands; Discord enforces a hard
	// per-channel rename budget.
	renameLimiter *rate.Limiter
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	repo matchdb.Repository,
	settings matchdb.SettingsRepository,
	teams teamLookup,
	organizerRoleID sharedtypes.RoleID,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *MatchService {
	return &MatchService{
		repo:            repo,
		settings:        settings,
		teams:           teams,
		organizerRoleID: organizerRoleID,
		logger:          logger,
		metrics:         metrics,
		tracer:          tracer,
		renameLimiter:   rate.NewLimiter(rate.Every(30*time.Second), 2),
	}
}

// isOrganizer reports whether the requester carries the organizer role. An
// unconfigured role denies everyone rather than opening the gate.
func (s *MatchService) isOrganizer(roleIDs []sharedtypes.RoleID) bool {
	if s.organizerRoleID == "" {
		return false
	}
	for _, id := range roleIDs {
		if id == s.organizerRoleID {
			return true
		}
	}
	return false
}

type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *MatchService) withTelemetry(
	ctx context.Context,
	operationName string,
	matchID sharedtypes.MatchID,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
		attribute.Int64("match_id", int64(matchID)),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "MatchService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "MatchService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.MatchID("match_id", matchID),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "MatchService")
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
			attr.MatchID("match_id", matchID),
			attr.Error(wrappedErr),
		)
		s.metrics.RecordOperationFailure(ctx, operationName, "MatchService")
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.Failure != nil {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.MatchID("match_id", matchID),
			attr.Any("failure_payload", result.Failure),
		)
	}

	s.metrics.RecordOperationSuccess(ctx, operationName, "MatchService")
	return result, nil
}

// teamName resolves a team's display name, degrading to a placeholder when
// the team row is missing rather than failing the whole operation.
func (s *MatchService) teamName(ctx context.Context, id sharedtypes.TeamID, fallback string) string {
	team, err := s.teams.GetTeam(ctx, id)
	if err != nil || team == nil {
		return fallback
	}
	return team.Name
}
