package negotiation

import (
	"context"
	"fmt"
	"sync"
	"time"

	matchservice "github.com/The-Bracket-Club/tourney-bot/app/modules/match/application"
	negotiationservice "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/application"
	negotiationhandlers "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/handlers"
	negotiationqueue "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/queue"
	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationrouter "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/router"
	teamservice "github.com/The-Bracket-Club/tourney-bot/app/modules/team/application"
	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Module wires the negotiation service onto the event bus.
type Module struct {
	EventBus           eventbus.EventBus
	NegotiationService negotiationservice.Service
	QueueService       negotiationqueue.QueueService
	config             *config.Config
	NegotiationRouter  *negotiationrouter.NegotiationRouter
	cancelFunc         context.CancelFunc
	Helper             utils.Helpers
	observability      *observability.Observability
}

// NewNegotiationModule creates a new instance of the negotiation module.
func NewNegotiationModule(
	ctx context.Context,
	cfg *config.Config,
	obs *observability.Observability,
	repo negotiationdb.Repository,
	queue negotiationqueue.QueueService,
	matches matchservice.Service,
	teams teamservice.Service,
	eventBus eventbus.EventBus,
	router *message.Router,
	helpers utils.Helpers,
	routerCtx context.Context,
) (*Module, error) {
	logger := obs.Provider.Logger
	metrics := obs.Registry.NegotiationMetrics
	tracer := obs.Registry.Tracer

	loc, err := time.LoadLocation(cfg.Tournament.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid tournament timezone %q: %w", cfg.Tournament.Timezone, err)
	}

	negotiationService := negotiationservice.NewNegotiationService(
		repo,
		matches,
		teams,
		queue,
		loc,
		cfg.Tournament.NegotiationTTL,
		logger,
		metrics,
		tracer,
	)
	handlers := negotiationhandlers.NewNegotiationHandlers(negotiationService, teams, helpers)

	negotiationRouter := negotiationrouter.NewNegotiationRouter(logger, router, eventBus, eventBus, cfg, helpers, tracer)
	if err := negotiationRouter.Configure(routerCtx, handlers); err != nil {
		return nil, fmt.Errorf("failed to configure negotiation router: %w", err)
	}

	return &Module{
		EventBus:           eventBus,
		NegotiationService: negotiationService,
		QueueService:       queue,
		config:             cfg,
		NegotiationRouter:  negotiationRouter,
		Helper:             helpers,
		observability:      obs,
	}, nil
}

// Run keeps the module alive until the context is canceled.
func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	logger := m.observability.Provider.Logger
	logger.InfoContext(ctx, "Starting negotiation module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	logger.InfoContext(ctx, "Negotiation module stopped")
}

// Close stops the negotiation module and cleans up resources.
func (m *Module) Close() error {
	logger := m.observability.Provider.Logger

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.QueueService != nil {
		if err := m.QueueService.Stop(context.Background()); err != nil {
			logger.Error("Error stopping negotiation queue", "error", err)
		}
	}
	if m.NegotiationRouter != nil {
		if err := m.NegotiationRouter.Close(); err != nil {
			return fmt.Errorf("error closing negotiation router: %w", err)
		}
	}
	logger.Info("Negotiation module stopped")
	return nil
}
