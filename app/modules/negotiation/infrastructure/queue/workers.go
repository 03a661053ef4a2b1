package negotiationqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/The-Bracket-Club/tourney-bot/app/eventbus"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NegotiationExpireWorker publishes the expire-due event when a scheduled
// deadline fires.
type NegotiationExpireWorker struct {
	river.WorkerDefaults[NegotiationExpireJob]
	logger   *slog.Logger
	eventBus eventbus.EventBus
	helpers  utils.Helpers
}

// NewNegotiationExpireWorker creates a new expire worker.
func NewNegotiationExpireWorker(logger *slog.Logger, eventBus eventbus.EventBus, helpers utils.Helpers) *NegotiationExpireWorker {
	return &NegotiationExpireWorker{
		logger:   logger,
		eventBus: eventBus,
		helpers:  helpers,
	}
}

// Work publishes the expire-due event for the negotiation named in the job.
func (w *NegotiationExpireWorker) Work(ctx context.Context, job *river.Job[NegotiationExpireJob]) error {
	negotiationID, err := uuid.Parse(job.Args.NegotiationID)
	if err != nil {
		w.logger.ErrorContext(ctx, "Invalid negotiation ID in expire job",
			attr.String("negotiation_id", job.Args.NegotiationID),
			attr.Error(err),
		)
		// Retrying cannot fix a malformed ID.
		return nil
	}

	payload := negotiationevents.NegotiationExpireDuePayloadV1{
		GuildID:       job.Args.GuildID,
		NegotiationID: negotiationID,
		ExpiresAt:     job.Args.ExpiresAt,
	}

	msg, err := w.helpers.CreateResultMessage(
		message.NewMessage(watermill.NewUUID(), nil),
		payload,
		negotiationevents.NegotiationExpireDueV1,
	)
	if err != nil {
		return fmt.Errorf("failed to build expire-due message: %w", err)
	}

	if err := w.eventBus.Publish(negotiationevents.NegotiationExpireDueV1, msg); err != nil {
		return fmt.Errorf("failed to publish expire-due event: %w", err)
	}

	w.logger.InfoContext(ctx, "Negotiation expire deadline fired",
		attr.String("negotiation_id", job.Args.NegotiationID),
		attr.Time("expires_at", job.Args.ExpiresAt),
	)
	return nil
}
