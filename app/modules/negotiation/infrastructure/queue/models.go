package negotiationqueue

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// NegotiationExpireJob fires when an open offer reaches its deadline.
// The worker only announces that the deadline passed; whether the offer is
// still open is decided when the event is handled.
type NegotiationExpireJob struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	NegotiationID string              `json:"negotiation_id"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

// Kind returns the job type identifier for River.
func (NegotiationExpireJob) Kind() string { return "negotiation_expire" }
