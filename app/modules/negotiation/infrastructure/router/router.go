package negotiationrouter

import (
	"context"
	"fmt"
	"log/slog"

	negotiationhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/handlers"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// NegotiationRouter handles routing for negotiation module events.
type NegotiationRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	config     *config.Config
	helper     utils.Helpers
	tracer     trace.Tracer
}

// NewNegotiationRouter creates a new NegotiationRouter.
func NewNegotiationRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
) *NegotiationRouter {
	return &NegotiationRouter{
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
func (r *NegotiationRouter) Configure(routerCtx context.Context, handlers negotiationhandlers.Handlers) error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.NewMiddlewareHelper().CommonMetadataMiddleware("negotiation"),
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
	handlerName := "negotiation." + topic

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
func (r *NegotiationRouter) RegisterHandlers(ctx context.Context, handlers negotiationhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, negotiationevents.NegotiationProposeRequestedV1, handlers.HandlePropose)
	registerHandler(deps, negotiationevents.NegotiationRespondRequestedV1, handlers.HandleRespond)
	registerHandler(deps, negotiationevents.NegotiationExpireDueV1, handlers.HandleExpireDue)
	registerHandler(deps, negotiationevents.NegotiationControlBindRequestedV1, handlers.HandleBindControl)
	registerHandler(deps, matchevents.MatchDeletedV1, handlers.HandleMatchDeleted)

	return nil
}

// Close stops the router.
func (r *NegotiationRouter) Close() error {
	return r.Router.Close()
}
