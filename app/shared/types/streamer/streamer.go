package streamertypes

import (
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Streamer is a caster signed up to stream one side of a match.
// Each side of a match can have at most one streamer.
type Streamer struct {
	MatchID      sharedtypes.MatchID  `json:"match_id"`
	StreamerID   sharedtypes.UserID   `json:"streamer_id"`
	TeamSide     sharedtypes.TeamSide `json:"team_side"`
	StreamURL    string               `json:"stream_url"`
	SteamID64    string               `json:"steam_id64,omitempty"`
	RegisteredAt time.Time            `json:"registered_at"`
}
