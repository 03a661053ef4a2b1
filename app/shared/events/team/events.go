package teamevents

import (
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// Topic constants for the team module.
const (
	TeamSyncRequestedV1 = "team.sync.requested.v1"
	TeamsSyncedV1       = "team.synced.v1"
	TeamSyncFailedV1    = "team.sync.failed.v1"
)

// TeamSyncRequestedPayloadV1 mirrors the configured team roster into the store.
type TeamSyncRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

type TeamsSyncedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Teams   []teamtypes.Team    `json:"teams"`
}

type TeamSyncFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
