package uicontrol

import (
	"context"
	"fmt"
	"sync"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	uicontrolservice "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/application"
	uicontrolhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/handlers"
	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	uicontrolrouter "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/router"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module wires the uicontrol service onto the event bus.
type Module struct {
	EventBus         eventbus.EventBus
	UIControlService uicontrolservice.Service
	config           *config.Config
	UIControlRouter  *uicontrolrouter.UIControlRouter
	cancelFunc       context.CancelFunc
	Helper           utils.Helpers
	observability    *observability.Observability
}

// NewUIControlModule creates a new instance of the uicontrol module.
func NewUIControlModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo uicontroldb.Repository,
	matches matchdb.Repository,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Provider.Logger
	metrics := obs.Registry.UIControlMetrics
	tracer := obs.Registry.Tracer

	retention := time.Duration(cfg.Tournament.ControlRetentionDays) * 24 * time.Hour

	uiControlService := uicontrolservice.NewUIControlService(
		repo,
		matches,
		retention,
		logger,
		metrics,
		obs.Registry.RestorationMetrics,
		tracer,
	)
	handlers := uicontrolhandlers.NewUIControlHandlers(uiControlService, helpers)

	uiControlRouter := uicontrolrouter.NewUIControlRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer)
	if err := uiControlRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure uicontrol router: %w", err)
	}

	return &Module{
		EventBus:         eventBus,
		UIControlService: uiControlService,
		config:           cfg,
		UIControlRouter:  uiControlRouter,
		Helper:           helpers,
		observability:    obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting uicontrol module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "UIControl module stopped")
}

// Close stops the uicontrol module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.UIControlRouter != nil {
		if err := m.UIControlRouter.Close(); err != nil {
			return fmt.Errorf("error closing uicontrol router: %w", err)
		}
	}
	logger.Info("UIControl module stopped")
	return nil
}
