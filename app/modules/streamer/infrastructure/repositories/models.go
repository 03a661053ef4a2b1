package streamerdb

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/uptrace/bun"
)

// MatchStreamer is one caster signed up for a side of a match. The unique
// index on (match_id, team_side) enforces one streamer per side.
type MatchStreamer struct {
	bun.BaseModel `bun:"table:match_streamers,alias:ms"`

	ID           int64                `bun:"id,pk,autoincrement"`
	MatchID      sharedtypes.MatchID  `bun:"match_id,notnull"`
	StreamerID   sharedtypes.UserID   `bun:"streamer_id,notnull,type:varchar(20)"`
	TeamSide     sharedtypes.TeamSide `bun:"team_side,notnull,type:varchar(10)"`
	StreamURL    string               `bun:"stream_url,notnull"`
	SteamID64    string               `bun:"steam_id64,nullzero,type:varchar(20)"`
	RegisteredAt time.Time            `bun:"registered_at,nullzero,notnull,default:current_timestamp"`
}

func toDomainModel(m *MatchStreamer) *streamertypes.Streamer {
	if m == nil {
		return nil
	}
	return &streamertypes.Streamer{
		MatchID:      m.MatchID,
		StreamerID:   m.StreamerID,
		TeamSide:     m.TeamSide,
		StreamURL:    m.StreamURL,
		SteamID64:    m.SteamID64,
		RegisteredAt: m.RegisteredAt,
	}
}
