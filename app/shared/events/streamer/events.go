package streamerevents

import (
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
)

// Topic constants for the streamer module.
const (
	StreamerRegisterRequestedV1  = "streamer.register.requested.v1"
	StreamerRegisteredV1         = "streamer.registered.v1"
	StreamerRegistrationFailedV1 = "streamer.registration.failed.v1"

	StreamerUnregisterRequestedV1  = "streamer.unregister.requested.v1"
	StreamerUnregisteredV1         = "streamer.unregistered.v1"
	StreamerUnregistrationFailedV1 = "streamer.unregistration.failed.v1"

	StreamerListRequestedV1     = "streamer.list.requested.v1"
	StreamerListV1              = "streamer.list.v1"
	StreamerListRetrievalFailed = "streamer.list.failed.v1"
)

// StreamerRegisterRequestedPayloadV1 signs a caster up for one side of a match.
type StreamerRegisterRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID  `json:"guild_id"`
	MatchID    sharedtypes.MatchID  `json:"match_id"`
	StreamerID sharedtypes.UserID   `json:"streamer_id"`
	TeamSide   sharedtypes.TeamSide `json:"team_side"`
	StreamURL  string               `json:"stream_url"`
	SteamID64  string               `json:"steam_id64,omitempty"`
}

type StreamerRegisteredPayloadV1 struct {
	GuildID  sharedtypes.GuildID    `json:"guild_id"`
	Streamer streamertypes.Streamer `json:"streamer"`
}

type StreamerRegistrationFailedPayloadV1 struct {
	GuildID    sharedtypes.GuildID  `json:"guild_id"`
	MatchID    sharedtypes.MatchID  `json:"match_id"`
	StreamerID sharedtypes.UserID   `json:"streamer_id"`
	TeamSide   sharedtypes.TeamSide `json:"team_side"`
	Reason     string               `json:"reason"`
}

type StreamerUnregisterRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	MatchID    sharedtypes.MatchID `json:"match_id"`
	StreamerID sharedtypes.UserID  `json:"streamer_id"`
}

type StreamerUnregisteredPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	MatchID    sharedtypes.MatchID `json:"match_id"`
	StreamerID sharedtypes.UserID  `json:"streamer_id"`
}

type StreamerUnregistrationFailedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	MatchID    sharedtypes.MatchID `json:"match_id"`
	StreamerID sharedtypes.UserID  `json:"streamer_id"`
	Reason     string              `json:"reason"`
}

type StreamerListRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
}

type StreamerListPayloadV1 struct {
	GuildID   sharedtypes.GuildID      `json:"guild_id"`
	MatchID   sharedtypes.MatchID      `json:"match_id"`
	Streamers []streamertypes.Streamer `json:"streamers"`
}

type StreamerListFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}
