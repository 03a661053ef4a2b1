package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/modules/match"
	"github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation"
	negotiationqueue "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/queue"
	"github.com/The-Bracket-Club/tourney-bot/app/modules/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/modules/team"
	"github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/The-Bracket-Club/tourney-bot/db/bundb"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// App assembles the backend: one database, one event bus, and the five
// modules riding on them.
type App struct {
	Config        *config.Config
	Observability *observability.Observability
	DB            *bundb.DBService
	EventBus      eventbus.EventBus
	Helpers       utils.Helpers

	TeamModule        *team.Module
	MatchModule       *match.Module
	NegotiationModule *negotiation.Module
	UIControlModule   *uicontrol.Module
	StreamerModule    *streamer.Module

	NegotiationQueue *negotiationqueue.Service

	routers    []*message.Router
	cancelFunc context.CancelFunc
}

// Initialize wires every dependency and module.
func (a *App) Initialize(ctx context.Context, cfg *config.Config, obs *observability.Observability) error {
	a.Config = cfg
	a.Observability = obs
	logger := obs.Provider.Logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	a.DB = dbService

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	a.EventBus = bus

	if err := eventbus.InitializeStreams(ctx, bus); err != nil {
		return fmt.Errorf("failed to initialize streams: %w", err)
	}

	a.Helpers = utils.NewHelpers(logger)
	watermillLogger := watermill.NewSlogLogger(logger)

	newRouter := func() (*message.Router, error) {
		router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
		if err != nil {
			return nil, err
		}
		a.routers = append(a.routers, router)
		return router, nil
	}

	teamRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create team router: %w", err)
	}
	a.TeamModule, err = team.NewTeamModule(ctx, cfg, obs, dbService.TeamDB, bus, teamRouter, a.Helpers, ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize team module: %w", err)
	}

	matchRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create match router: %w", err)
	}
	a.MatchModule, err = match.NewMatchModule(ctx, cfg, obs, dbService.MatchDB, dbService.SettingsDB, a.TeamModule.TeamService, bus, matchRouter, a.Helpers, ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize match module: %w", err)
	}

	queue, err := negotiationqueue.NewService(ctx, dbService.GetDB(), logger, cfg.Postgres.DSN, obs.Registry.QueueMetrics, bus, a.Helpers)
	if err != nil {
		return fmt.Errorf("failed to initialize negotiation queue: %w", err)
	}
	a.NegotiationQueue = queue

	negotiationRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create negotiation router: %w", err)
	}
	a.NegotiationModule, err = negotiation.NewNegotiationModule(ctx, cfg, obs, dbService.NegotiationDB, queue, a.MatchModule.MatchService, a.TeamModule.TeamService, bus, negotiationRouter, a.Helpers, ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize negotiation module: %w", err)
	}

	uiControlRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create uicontrol router: %w", err)
	}
	a.UIControlModule, err = uicontrol.NewUIControlModule(ctx, cfg, obs, dbService.ControlDB, dbService.MatchDB, bus, uiControlRouter, a.Helpers, ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize uicontrol module: %w", err)
	}

	streamerRouter, err := newRouter()
	if err != nil {
		return fmt.Errorf("failed to create streamer router: %w", err)
	}
	a.StreamerModule, err = streamer.NewStreamerModule(ctx, cfg, obs, dbService.StreamerDB, a.MatchModule.MatchService, bus, streamerRouter, a.Helpers, ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize streamer module: %w", err)
	}

	return nil
}

// Run starts the routers, the expiry queue, and the ops server, then blocks
// until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	logger := a.Observability.Provider.Logger

	ctx, cancel := context.WithCancel(ctx)
	a.cancelFunc = cancel
	defer cancel()

	if err := a.NegotiationQueue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start negotiation queue: %w", err)
	}

	a.Observability.StartOpsServer(ctx, a.Config.Observability.MetricsAddress, func(ctx context.Context) error {
		return a.NegotiationQueue.HealthCheck(ctx)
	})

	var wg sync.WaitGroup
	for _, router := range a.routers {
		wg.Add(1)
		go func(r *message.Router) {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				logger.Error("Router stopped with error", "error", err)
			}
		}(router)
	}

	wg.Add(5)
	go a.TeamModule.Run(ctx, &wg)
	go a.MatchModule.Run(ctx, &wg)
	go a.NegotiationModule.Run(ctx, &wg)
	go a.UIControlModule.Run(ctx, &wg)
	go a.StreamerModule.Run(ctx, &wg)

	logger.InfoContext(ctx, "Application started")
	<-ctx.Done()
	wg.Wait()
	return nil
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close() error {
	logger := a.Observability.Provider.Logger

	if a.cancelFunc != nil {
		a.cancelFunc()
	}

	for _, module := range []interface{ Close() error }{
		a.StreamerModule, a.UIControlModule, a.NegotiationModule, a.MatchModule, a.TeamModule,
	} {
		if module != nil {
			if err := module.Close(); err != nil {
				logger.Error("Error closing module", "error", err)
			}
		}
	}

	if a.EventBus != nil {
		if err := a.EventBus.Close(); err != nil {
			logger.Error("Error closing event bus", "error", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.GetDB().Close(); err != nil {
			logger.Error("Error closing database", "error", err)
		}
	}

	logger.Info("Application shut down")
	return nil
}
