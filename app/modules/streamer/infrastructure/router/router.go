package streamerrouter

import (
	"context"
	"fmt"
	"log/slog"

	streamerhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/handlers"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// StreamerRouter handles routing for streamer module events.
type StreamerRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	config     *config.Config
	helper     utils.Helpers
	tracer     trace.Tracer
}

// NewStreamerRouter creates a new StreamerRouter.
func NewStreamerRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
) *StreamerRouter {
	return &StreamerRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		config:     config,
		helper:     helper,
		tracer:     tracer,
	}
}

// Configure sets up the router with the necessary handlers and dependencies.
func (r *StreamerRouter) Configure(routerCtx context.Context, handlers streamerhandlers.Handlers) error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.NewMiddlewareHelper().CommonMetadataMiddleware("streamer"),
		utils.NewMiddlewareHelper().GuildMetadataMiddleware(),
		utils.NewMiddlewareHelper().RoutingMetadataMiddleware(),
		middleware.Recoverer,
	)

	if err := r.RegisterHandlers(routerCtx, handlers); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
	helper     utils.Helpers
	metrics    handlerwrapper.ReturningMetrics
}

// registerHandler registers a pure transformation-pattern handler with typed payload.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "streamer." + topic

	deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // publish topic comes from each message's metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			deps.helper,
			deps.metrics,
			handler,
		),
	)
}

// RegisterHandlers registers event handlers using the pure transformation pattern.
func (r *StreamerRouter) RegisterHandlers(ctx context.Context, handlers streamerhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, streamerevents.StreamerRegisterRequestedV1, handlers.HandleRegister)
	registerHandler(deps, streamerevents.StreamerUnregisterRequestedV1, handlers.HandleUnregister)
	registerHandler(deps, streamerevents.StreamerListRequestedV1, handlers.HandleList)
	registerHandler(deps, matchevents.MatchTimeSetV1, handlers.HandleMatchTimeSet)
	registerHandler(deps, matchevents.MatchResultConfirmedV1, handlers.HandleResultConfirmed)
	registerHandler(deps, matchevents.MatchDeletedV1, handlers.HandleMatchDeleted)

	return nil
}

// Close stops the router.
func (r *StreamerRouter) Close() error {
	return r.Router.Close()
}
