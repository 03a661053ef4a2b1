package uicontrolservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// matchChecker is the slice of the match module restoration needs to purge
// controls whose match is gone.
type matchChecker interface {
	Exists(ctx context.Context, id sharedtypes.MatchID) (bool, error)
}

// UIControlService implements the Service interface.
type UIControlService struct {
	repo        uicontroldb.Repository
	matches     matchChecker
	registry    *Registry
	factories   map[uicontroltypes.ControlKind]Factory
	retention   time.Duration
	now         func() time.Time
	logger      *slog.Logger
	metrics     metrics.OperationMetrics
	restoration metrics.RestorationMetrics
	tracer      trace.Tracer
}

// NewUIControlService creates a new UIControlService with the default control
// factories.
func NewUIControlService(
	repo uicontroldb.Repository,
	matches matchChecker,
	retention time.Duration,
	logger *slog.Logger,
	operationMetrics metrics.OperationMetrics,
	restorationMetrics metrics.RestorationMetrics,
	tracer trace.Tracer,
) *UIControlService {
	return &UIControlService{
		repo:        repo,
		matches:     matches,
		registry:    NewRegistry(),
		factories:   DefaultFactories(),
		retention:   retention,
		now:         time.Now,
		logger:      logger,
		metrics:     operationMetrics,
		restoration: restorationMetrics,
		tracer:      tracer,
	}
}

// Registry exposes the live-control index for interaction routing.
func (s *UIControlService) Registry() *Registry {
	return s.registry
}

type operationFunc func(ctx context.Context) (results.OperationResult, error)

// withTelemetry wraps a service operation with tracing, metrics, and panic
// recovery.
func (s *UIControlService) withTelemetry(
	ctx context.Context,
	operationName string,
	op operationFunc,
) (result results.OperationResult, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName, "UIControlService")

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, "UIControlService", time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName, "UIControlService")
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
		s.metrics.RecordOperationFailure(ctx, operationName, "UIControlService")
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

	s.metrics.RecordOperationSuccess(ctx, operationName, "UIControlService")
	return result, nil
}
