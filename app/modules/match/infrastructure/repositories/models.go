package matchdb

import (
	"time"

	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/uptrace/bun"
)

// Match is the persisted form of a tournament fixture. The result is stored
// as JSONB so confirmation and override can evolve the shape without
// migrations.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID               sharedtypes.MatchID   `bun:"id,pk,autoincrement"`
	GuildID          sharedtypes.GuildID   `bun:"guild_id,notnull,type:varchar(20)"`
	Team1ID          sharedtypes.TeamID    `bun:"team1_id,notnull"`
	Team2ID          sharedtypes.TeamID    `bun:"team2_id,notnull"`
	MatchDate        time.Time             `bun:"match_date,notnull"`
	MatchTime        *time.Time            `bun:"match_time,nullzero"`
	MapName          string                `bun:"map_name,nullzero"`
	Team1Side        string                `bun:"team1_side,nullzero,type:varchar(10)"`
	Team2Side        string                `bun:"team2_side,nullzero,type:varchar(10)"`
	PrivateChannelID sharedtypes.ChannelID `bun:"private_channel_id,nullzero,type:varchar(20)"`
	PublicMessageID  sharedtypes.MessageID `bun:"public_message_id,nullzero,type:varchar(20)"`
	Status           matchtypes.Status     `bun:"status,notnull,default:'pending',type:varchar(10)"`
	Result           *matchtypes.Result    `bun:"result,type:jsonb"`
	ReplayURL        string                `bun:"replay_url,nullzero"`
	WeekNumber       int                   `bun:"week_number,nullzero"`
	CreatedAt        time.Time             `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt        time.Time             `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Setting is one row of the tournament settings key/value table. Per-match
// presentation state (channel names, accepted server details) lives here,
// keyed by convention: "match_{id}_server", "match_{id}_channel_name".
type Setting struct {
	bun.BaseModel `bun:"table:tournament_settings,alias:ts"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
