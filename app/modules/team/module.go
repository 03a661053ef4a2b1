package team

import (
	"context"
	"fmt"
	"sync"

	teamservice "github.com/The-Bracket-Club/tourney-bot/app/modules/team/application"
	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	teamrouter "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/router"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module wires the team service onto the event bus.
type Module struct {
	EventBus      eventbus.EventBus
	TeamService   teamservice.Service
	config        *config.Config
	TeamRouter    *teamrouter.TeamRouter
	cancelFunc    context.CancelFunc
	Helper        utils.Helpers
	observability *observability.Observability
}

// NewTeamModule creates a new instance of the team module.
func NewTeamModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo teamdb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Provider.Logger
	metrics := obs.Registry.TeamMetrics
	tracer := obs.Registry.Tracer

	roster := make([]teamtypes.RosterEntry, 0, len(cfg.Tournament.Teams))
	for _, t := range cfg.Tournament.Teams {
		roster = append(roster, teamtypes.RosterEntry{Name: t.Name, RoleID: t.RoleID})
	}

	teamService := teamservice.NewTeamService(repo, roster, logger, metrics, tracer)

	teamRouter := teamrouter.NewTeamRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer)
	if err := teamRouter.Configure(routerCtx, teamService); err != nil {
		return nil, fmt.Errorf("failed to configure team router: %w", err)
	}

	return &Module{
		EventBus:      eventBus,
		TeamService:   teamService,
		config:        cfg,
		TeamRouter:    teamRouter,
		Helper:        helpers,
		observability: obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting team module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Team module stopped")
}

// Close stops the team module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.TeamRouter != nil {
		if err := m.TeamRouter.Close(); err != nil {
			return fmt.Errorf("error closing team router: %w", err)
		}
	}
	logger.Info("Team module stopped")
	return nil
}
