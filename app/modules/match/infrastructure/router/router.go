package matchrouter

import (
	"context"
	"fmt"
	"log/slog"

	matchhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/handlers"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// MatchRouter handles routing for match module events.
type MatchRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	config     *config.Config
	helper     utils.Helpers
	tracer     trace.Tracer
}

// NewMatchRouter creates a new MatchRouter.
func NewMatchRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
) *MatchRouter {
	return &MatchRouter{
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
func (r *MatchRouter) Configure(routerCtx context.Context, handlers matchhandlers.Handlers) error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.NewMiddlewareHelper().CommonMetadataMiddleware("match"),
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
	handlerName := "match." + topic

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
func (r *MatchRouter) RegisterHandlers(ctx context.Context, handlers matchhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, matchevents.MatchCreateRequestedV1, handlers.HandleCreateMatch)
	registerHandler(deps, matchevents.MatchChannelBindRequestedV1, handlers.HandleChannelBind)
	registerHandler(deps, matchevents.MatchPublicMessageBindRequestedV1, handlers.HandlePublicMessageBind)
	registerHandler(deps, matchevents.MatchTimeSetRequestedV1, handlers.HandleSetMatchTime)
	registerHandler(deps, matchevents.MatchServerSetRequestedV1, handlers.HandleSetServer)
	registerHandler(deps, matchevents.MatchResultRecordRequestedV1, handlers.HandleRecordResult)
	registerHandler(deps, matchevents.MatchResultConfirmRequestedV1, handlers.HandleConfirmResult)
	registerHandler(deps, matchevents.MatchResultOverrideRequestedV1, handlers.HandleOverrideResult)
	registerHandler(deps, matchevents.MatchDetailsUpdateRequestedV1, handlers.HandleUpdateDetails)
	registerHandler(deps, matchevents.MatchDeleteRequestedV1, handlers.HandleDeleteMatch)

	return nil
}

// Close stops the router.
func (r *MatchRouter) Close() error {
	return r.Router.Close()
}
