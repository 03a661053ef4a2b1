package negotiationdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Negotiation represents a negotiation row in the database. Payload holds the
// kind-tagged envelope so counters of any kind round-trip without schema
// changes. At most one open row may exist per (match, kind); a partial unique
// index enforces it.
type Negotiation struct {
	bun.BaseModel `bun:"table:negotiations,alias:n"`

	ID              uuid.UUID              `bun:"id,pk,type:uuid"`
	MatchID         sharedtypes.MatchID    `bun:"match_id,notnull"`
	GuildID         sharedtypes.GuildID    `bun:"guild_id,notnull,type:varchar(20)"`
	Kind            negotiationtypes.Kind  `bun:"kind,notnull,type:varchar(10)"`
	State           negotiationtypes.State `bun:"state,notnull,default:'open',type:varchar(12)"`
	ProposerTeamID  sharedtypes.TeamID     `bun:"proposer_team_id,notnull"`
	ResponderTeamID sharedtypes.TeamID     `bun:"responder_team_id,notnull"`
	Payload         []byte                 `bun:"payload,notnull,type:jsonb"`
	ChannelID       sharedtypes.ChannelID  `bun:"channel_id,type:varchar(20)"`
	MessageID       sharedtypes.MessageID  `bun:"message_id,type:varchar(20)"`
	SupersededBy    *uuid.UUID             `bun:"superseded_by,type:uuid,nullzero"`
	CreatedAt       time.Time              `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	ExpiresAt       time.Time              `bun:"expires_at,notnull"`
	ResolvedAt      *time.Time             `bun:"resolved_at,nullzero"`
}
