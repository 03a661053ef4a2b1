package streamer

import (
	"context"
	"fmt"
	"sync"

	matchservice "github.com/The-Bracket-Club/tourney-bot/app/modules/match/application"
	streamerservice "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/application"
	streamerhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/handlers"
	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	streamerrouter "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/router"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module wires the streamer service onto the event bus.
type Module struct {
	EventBus        eventbus.EventBus
	StreamerService streamerservice.Service
	config          *config.Config
	StreamerRouter  *streamerrouter.StreamerRouter
	cancelFunc      context.CancelFunc
	Helper          utils.Helpers
	observability   *observability.Observability
}

// NewStreamerModule creates a new instance of the streamer module.
func NewStreamerModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo streamerdb.Repository,
	matches matchservice.Service,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Provider.Logger
	metrics := obs.Registry.StreamerMetrics
	tracer := obs.Registry.Tracer

	streamerService := streamerservice.NewStreamerService(repo, matches, logger, metrics, tracer)
	handlers := streamerhandlers.NewStreamerHandlers(streamerService, helpers, cfg.Tournament)

	streamerRouter := streamerrouter.NewStreamerRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer)
	if err := streamerRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure streamer router: %w", err)
	}

	return &Module{
		EventBus:        eventBus,
		StreamerService: streamerService,
		config:          cfg,
		StreamerRouter:  streamerRouter,
		Helper:          helpers,
		observability:   obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting streamer module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Streamer module stopped")
}

// Close stops the streamer module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.StreamerRouter != nil {
		if err := m.StreamerRouter.Close(); err != nil {
			return fmt.Errorf("error closing streamer router: %w", err)
		}
	}
	logger.Info("Streamer module stopped")
	return nil
}
