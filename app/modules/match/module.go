package match

import (
	"context"
	"fmt"
	"sync"

	matchservice "github.com/The-Bracket-Club/tourney-bot/app/modules/match/application"
	matchhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/handlers"
	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchrouter "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/router"
	teamservice "github.com/The-Bracket-Club/tourney-bot/app/modules/team/application"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module wires the match service onto the event bus.
type Module struct {
	EventBus      eventbus.EventBus
	MatchService  matchservice.Service
	config        *config.Config
	MatchRouter   *matchrouter.MatchRouter
	cancelFunc    context.CancelFunc
	Helper        utils.Helpers
	observability *observability.Observability
}

// NewMatchModule creates a new instance of the match module.
func NewMatchModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo matchdb.Repository,
	settings matchdb.SettingsRepository,
	teams teamservice.Service,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Provider.Logger
	metrics := obs.Registry.MatchMetrics
	tracer := obs.Registry.Tracer

	matchService := matchservice.NewMatchService(repo, settings, teams, cfg.Tournament.OrganizerRoleID, logger, metrics, tracer)
	handlers := matchhandlers.NewMatchHandlers(matchService, teams, helpers, cfg.Tournament)

	matchRouter := matchrouter.NewMatchRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer)
	if err := matchRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure match router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		MatchService:  matchService,
		config:        cfg,
		MatchRouter:   matchRouter,
		Helper:        helpers,
		observability: obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting match module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Match module stopped")
}

// Close stops the match module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.MatchRouter != nil {
		if err := m.MatchRouter.Close(); err != nil {
			return fmt.Errorf("error closing match router: %w", err)
		}
	}
	logger.Info("Match module stopped")
	return nil
}
