package uicontrolrouter

import (
	"context"
	"fmt"
	"log/slog"

	uicontrolhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/handlers"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// UIControlRouter handles routing for uicontrol module events.
type UIControlRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	config     *config.Config
	helper     utils.Helpers
	tracer     trace.Tracer
}

// NewUIControlRouter creates a new UIControlRouter.
func NewUIControlRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
) *UIControlRouter {
	return &UIControlRouter{
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
func (r *UIControlRouter) Configure(routerCtx context.Context, handlers uicontrolhandlers.Handlers) error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.NewMiddlewareHelper().CommonMetadataMiddleware("uicontrol"),
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
	handlerName := "uicontrol." + topic

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
func (r *UIControlRouter) RegisterHandlers(ctx context.Context, handlers uicontrolhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, uicontrolevents.ControlUpsertRequestedV1, handlers.HandleUpsert)
	registerHandler(deps, uicontrolevents.ControlDeactivateRequestedV1, handlers.HandleDeactivate)
	registerHandler(deps, uicontrolevents.RestoreRequestedV1, handlers.HandleRestore)
	registerHandler(deps, matchevents.MatchDeletedV1, handlers.HandleMatchDeleted)

	return nil
}

// Close stops the router.
func (r *UIControlRouter) Close() error {
	return r.Router.Close()
}
