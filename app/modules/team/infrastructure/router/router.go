package teamrouter

import (
	"context"
	"fmt"
	"log/slog"

	teamservice "github.com/The-Bracket-Club/tourney-bot/app/modules/team/application"
	teamhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/handlers"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	teamevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// TeamRouter handles routing for team module events.
type TeamRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	config     *config.Config
	helper     utils.Helpers
	tracer     trace.Tracer
}

// NewTeamRouter creates a new TeamRouter.
func NewTeamRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	config *config.Config,
	helper utils.Helpers,
	tracer trace.Tracer,
) *TeamRouter {
	return &TeamRouter{
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
func (r *TeamRouter) Configure(routerCtx context.Context, teamService teamservice.Service) error {
	handlers := teamhandlers.NewTeamHandlers(teamService, r.helper)

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		utils.NewMiddlewareHelper().CommonMetadataMiddleware("team"),
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
	handlerName := "team." + topic

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
func (r *TeamRouter) RegisterHandlers(ctx context.Context, handlers teamhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		helper:     r.helper,
	}

	registerHandler(deps, teamevents.TeamSyncRequestedV1, handlers.HandleSyncTeams)

	return nil
}

// Close stops the router.
func (r *TeamRouter) Close() error {
	return r.Router.Close()
}
