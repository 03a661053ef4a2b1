package negotiationdb

import (
	"context"
	"time"

	"github.com/google/uuid"

	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Repository is the persistence boundary of the negotiation module. Terminal
// transitions are conditional on the row still being open, so concurrent
// resolutions collapse to exactly one winner.
type Repository interface {
	// CreateOpen inserts a new open negotiation. Returns ErrDuplicateOpen
	// when the match already has an open negotiation of the same kind.
	CreateOpen(ctx context.Context, negotiation *negotiationtypes.Negotiation) error
	GetByID(ctx context.Context, id uuid.UUID) (*negotiationtypes.Negotiation, error)
	GetOpen(ctx context.Context, matchID sharedtypes.MatchID, kind negotiationtypes.Kind) (*negotiationtypes.Negotiation, error)
	// MarkAccepted resolves an open negotiation as accepted. Returns
	// ErrNotOpen when the row was already resolved.
	MarkAccepted(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error
	// MarkSuperseded resolves an open negotiation, linking its replacement.
	MarkSuperseded(ctx context.Context, id, replacementID uuid.UUID, resolvedAt time.Time) error
	// MarkExpired resolves an open negotiation as expired.
	MarkExpired(ctx context.Context, id uuid.UUID, expiredAt time.Time) error
	SetControlMessage(ctx context.Context, id uuid.UUID, channelID sharedtypes.ChannelID, messageID sharedtypes.MessageID) error
	DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
}
