package negotiationqueue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/uptrace/bun"

	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
)

// QueueService schedules deadline jobs for open negotiations.
type QueueService interface {
	// ScheduleExpiry schedules the expire-due event for a negotiation.
	ScheduleExpiry(ctx context.Context, guildID sharedtypes.GuildID, negotiationID uuid.UUID, expiresAt time.Time) error
	// CancelExpiry cancels the pending expiry job for a negotiation.
	CancelExpiry(ctx context.Context, negotiationID uuid.UUID) error
	// HealthCheck verifies the queue service is healthy.
	HealthCheck(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

var _ QueueService = (*Service)(nil)

// Service handles deadline scheduling for the negotiation module using River.
type Service struct {
	client  *river.Client[pgx.Tx]
	pool    *pgxpool.Pool
	logger  *slog.Logger
	db      *bun.DB
	metrics metrics.OperationMetrics
}

// NewService creates a new River-based queue service for negotiation deadlines.
func NewService(
	ctx context.Context,
	bunDB *bun.DB,
	logger *slog.Logger,
	dsn string,
	operationMetrics metrics.OperationMetrics,
	eventBus eventbus.EventBus,
	helpers utils.Helpers,
) (*Service, error) {
	ctxLogger := logger.With(
		attr.String("component", "river_queue"),
	)

	operationMetrics.RecordOperationAttempt(ctx, "initialize_service", "river")

	// River needs pgx, not database/sql.
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewNegotiationExpireWorker(ctxLogger, eventBus, helpers))

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 50},
			"negotiation":      {MaxWorkers: 10},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		operationMetrics.RecordOperationFailure(ctx, "initialize_service", "river")
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	operationMetrics.RecordOperationSuccess(ctx, "initialize_service", "river")
	ctxLogger.InfoContext(ctx, "Negotiation queue service initialized")

	return &Service{
		client:  riverClient,
		pool:    pool,
		logger:  ctxLogger,
		db:      bunDB,
		metrics: operationMetrics,
	}, nil
}

// Start starts the River queue service.
func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "start_service", "river")
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.InfoContext(ctx, "Negotiation queue service started")
	return nil
}

// Stop stops the River queue service.
func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		s.metrics.RecordOperationFailure(ctx, "stop_service", "river")
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.InfoContext(ctx, "Negotiation queue service stopped")
	return nil
}

// ScheduleExpiry schedules the expire-due event for a negotiation.
func (s *Service) ScheduleExpiry(ctx context.Context, guildID sharedtypes.GuildID, negotiationID uuid.UUID, expiresAt time.Time) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "schedule_expiry", "river")

	job := NegotiationExpireJob{
		GuildID:       guildID,
		NegotiationID: negotiationID.String(),
		ExpiresAt:     expiresAt,
	}

	jobResult, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue:       "negotiation",
		ScheduledAt: expiresAt,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true, // one expiry job per negotiation
		},
	})
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "schedule_expiry", "river")
		return fmt.Errorf("failed to schedule expiry job: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "schedule_expiry", "river")
	s.metrics.RecordOperationDuration(ctx, "schedule_expiry", "river", time.Since(start))

	s.logger.InfoContext(ctx, "Negotiation expiry scheduled",
		attr.String("negotiation_id", negotiationID.String()),
		attr.Time("expires_at", expiresAt),
		attr.Int64("job_id", jobResult.Job.ID),
	)
	return nil
}

// CancelExpiry cancels the pending expiry job for a negotiation. Missing jobs
// are not an error: the deadline may already have fired.
func (s *Service) CancelExpiry(ctx context.Context, negotiationID uuid.UUID) error {
	start := time.Now()
	s.metrics.RecordOperationAttempt(ctx, "cancel_expiry", "river")

	type riverJobRow struct {
		ID int64 `bun:"id"`
	}

	var jobs []riverJobRow
	err := s.db.NewSelect().
		Table("river_job").
		Column("id").
		Where("kind = ?", "negotiation_expire").
		Where("state IN (?, ?)", "available", "scheduled").
		Where("args->>'negotiation_id' = ?", negotiationID.String()).
		Scan(ctx, &jobs)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "cancel_expiry", "river")
		return fmt.Errorf("failed to query expiry jobs: %w", err)
	}

	for _, job := range jobs {
		if _, err := s.client.JobCancel(ctx, job.ID); err != nil {
			s.logger.WarnContext(ctx, "Failed to cancel expiry job",
				attr.Int64("job_id", job.ID),
				attr.Error(err),
			)
		}
	}

	s.metrics.RecordOperationSuccess(ctx, "cancel_expiry", "river")
	s.metrics.RecordOperationDuration(ctx, "cancel_expiry", "river", time.Since(start))
	return nil
}

// HealthCheck verifies the queue service is healthy.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("river client is nil")
	}
	var count int
	err := s.db.NewSelect().
		Table("river_job").
		ColumnExpr("COUNT(*)").
		Scan(ctx, &count)
	if err != nil {
		return fmt.Errorf("queue service health check failed: %w", err)
	}
	return nil
}
