package streamerservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// matchLookup is the slice of the match module the streamer service needs.
type matchLookup interface {
	GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error)
}

// StreamerService implements the Service interface.
type StreamerService struct {
	repo    streamerdb.Repository
	matches matchLookup
	now     func() time.Time
	logger  *slog.Logger
	metrics metrics.OperationMetrics
	tracer  trace.Tracer
}

// NewStreamerService creates a new StreamerService.
func NewStreamerService(
	repo streamerdb.Repository,
	matches matchLookup,
	logger *slog.Logger,
	operationMetrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *StreamerService {
	return &StreamerService{
		repo:    repo,
		matches: matches,
		now:     time.Now,
		logger:  logger,
		metrics: operationMetrics,
		tracer:  tracer,
	}
}

type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *StreamerService) withTelemetry(
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

	s.metrics.RecordOperationAttempt(ctx, operationName, "StreamerService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "StreamerService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "StreamerService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "StreamerService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "StreamerService")
	return result, nil
}
