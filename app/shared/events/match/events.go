package matchevents

import (
	"time"

	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Topic constants for the match module. Requested topics are consumed here;
// the rest are published outcomes.
const (
	MatchCreateRequestedV1 = "match.create.requested.v1"
	MatchCreatedV1         = "match.created.v1"
	MatchCreationFailedV1  = "match.creation.failed.v1"

	MatchTimeSetRequestedV1 = "match.time.set.requested.v1"
	MatchTimeSetV1          = "match.time.set.v1"
	MatchTimeSetFailedV1    = "match.time.set.failed.v1"

	MatchServerSetRequestedV1 = "match.server.set.requested.v1"
	MatchServerSetV1          = "match.server.set.v1"
	MatchServerSetFailedV1    = "match.server.set.failed.v1"

	MatchResultRecordRequestedV1 = "match.result.record.requested.v1"
	MatchResultRecordedV1        = "match.result.recorded.v1"
	MatchResultRecordFailedV1    = "match.result.record.failed.v1"

	MatchResultConfirmRequestedV1 = "match.result.confirm.requested.v1"
	MatchResultConfirmedV1        = "match.result.confirmed.v1"
	MatchResultConfirmFailedV1    = "match.result.confirm.failed.v1"

	MatchResultOverrideRequestedV1 = "match.result.override.requested.v1"
	MatchResultOverrideFailedV1    = "match.result.override.failed.v1"

	MatchDetailsUpdateRequestedV1 = "match.details.update.requested.v1"
	MatchDetailsUpdatedV1         = "match.details.updated.v1"
	MatchDetailsUpdateFailedV1    = "match.details.update.failed.v1"

	MatchDeleteRequestedV1 = "match.delete.requested.v1"
	MatchDeletedV1         = "match.deleted.v1"
	MatchDeleteFailedV1    = "match.delete.failed.v1"

	// Gateway callbacks after it creates Discord resources for a match.
	MatchChannelBindRequestedV1       = "match.channel.bind.requested.v1"
	MatchPublicMessageBindRequestedV1 = "match.public_message.bind.requested.v1"
)

// MatchChannelBindRequestedPayloadV1 records the private channel the gateway
// created for a match.
type MatchChannelBindRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID   `json:"guild_id"`
	MatchID     sharedtypes.MatchID   `json:"match_id"`
	ChannelID   sharedtypes.ChannelID `json:"channel_id"`
	ChannelName string                `json:"channel_name"`
}

// MatchPublicMessageBindRequestedPayloadV1 records the public overview message
// the gateway posted for a match.
type MatchPublicMessageBindRequestedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	MatchID   sharedtypes.MatchID   `json:"match_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
}

// MatchCreateRequestedPayloadV1 asks for a new match between two teams.
type MatchCreateRequestedPayloadV1 struct {
	GuildID    sharedtypes.GuildID `json:"guild_id"`
	Team1ID    sharedtypes.TeamID  `json:"team1_id"`
	Team2ID    sharedtypes.TeamID  `json:"team2_id"`
	MatchDate  time.Time           `json:"match_date"`
	MapName    string              `json:"map_name"`
	Team1Side  string              `json:"team1_side"`
	Team2Side  string              `json:"team2_side"`
	WeekNumber int                 `json:"week_number"`
	CreatedBy  sharedtypes.UserID  `json:"created_by"`
}

type MatchCreatedPayloadV1 struct {
	Match matchtypes.Match `json:"match"`
}

type MatchCreationFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}

// MatchTimeSetRequestedPayloadV1 commits an agreed match time. Published by the
// negotiation module when a time offer is accepted, or directly by an organizer.
type MatchTimeSetRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	MatchID     sharedtypes.MatchID `json:"match_id"`
	MatchTime   time.Time           `json:"match_time"`
	RequestedBy sharedtypes.UserID  `json:"requested_by"`
}

type MatchTimeSetPayloadV1 struct {
	Match     matchtypes.Match `json:"match"`
	MatchTime time.Time        `json:"match_time"`
}

type MatchTimeSetFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchServerSetRequestedPayloadV1 commits accepted server details.
type MatchServerSetRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID `json:"guild_id"`
	MatchID     sharedtypes.MatchID `json:"match_id"`
	Host        string              `json:"host"`
	Password    string              `json:"password,omitempty"`
	Region      string              `json:"region,omitempty"`
	RequestedBy sharedtypes.UserID  `json:"requested_by"`
}

type MatchServerSetPayloadV1 struct {
	MatchID sharedtypes.MatchID `json:"match_id"`
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Host    string              `json:"host"`
}

type MatchServerSetFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchResultRecordRequestedPayloadV1 records a reported result, moving the
// match from pending to completed.
type MatchResultRecordRequestedPayloadV1 struct {
	GuildID      sharedtypes.GuildID `json:"guild_id"`
	MatchID      sharedtypes.MatchID `json:"match_id"`
	WinnerTeamID sharedtypes.TeamID  `json:"winner_team_id"`
	Score        string              `json:"score"`
	SubmittedBy  sharedtypes.UserID  `json:"submitted_by"`
}

type MatchResultRecordedPayloadV1 struct {
	Match  matchtypes.Match  `json:"match"`
	Result matchtypes.Result `json:"result"`
}

type MatchResultRecordFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchResultConfirmRequestedPayloadV1 is the organizer's confirmation of a
// recorded result.
type MatchResultConfirmRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID  `json:"guild_id"`
	MatchID     sharedtypes.MatchID  `json:"match_id"`
	ConfirmedBy sharedtypes.UserID   `json:"confirmed_by"`
	UserRoleIDs []sharedtypes.RoleID `json:"user_role_ids,omitempty"`
}

type MatchResultConfirmedPayloadV1 struct {
	Match  matchtypes.Match  `json:"match"`
	Result matchtypes.Result `json:"result"`
	// ArchiveSummary is the closing text for the private channel. Accepted
	// server details are folded in so they survive the archive.
	ArchiveSummary string `json:"archive_summary,omitempty"`
}

type MatchResultConfirmFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchResultOverrideRequestedPayloadV1 lets an organizer force a result and
// confirmation in one step, regardless of the current status.
type MatchResultOverrideRequestedPayloadV1 struct {
	GuildID      sharedtypes.GuildID  `json:"guild_id"`
	MatchID      sharedtypes.MatchID  `json:"match_id"`
	WinnerTeamID sharedtypes.TeamID   `json:"winner_team_id"`
	Score        string               `json:"score"`
	OverriddenBy sharedtypes.UserID   `json:"overridden_by"`
	UserRoleIDs  []sharedtypes.RoleID `json:"user_role_ids,omitempty"`
	Note         string               `json:"note,omitempty"`
}

type MatchResultOverrideFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchDetailsUpdateRequestedPayloadV1 edits match details. Nil fields are
// left untouched.
type MatchDetailsUpdateRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID  `json:"guild_id"`
	MatchID     sharedtypes.MatchID  `json:"match_id"`
	MatchDate   *time.Time           `json:"match_date,omitempty"`
	MapName     *string              `json:"map_name,omitempty"`
	Team1Side   *string              `json:"team1_side,omitempty"`
	Team2Side   *string              `json:"team2_side,omitempty"`
	ReplayURL   *string              `json:"replay_url,omitempty"`
	WeekNumber  *int                 `json:"week_number,omitempty"`
	RequestedBy sharedtypes.UserID   `json:"requested_by"`
	UserRoleIDs []sharedtypes.RoleID `json:"user_role_ids,omitempty"`
}

type MatchDetailsUpdatedPayloadV1 struct {
	Match matchtypes.Match `json:"match"`
}

type MatchDetailsUpdateFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// MatchDeleteRequestedPayloadV1 asks for a full match deletion. The
// confirmation code must match the one derived from the match ID.
type MatchDeleteRequestedPayloadV1 struct {
	GuildID          sharedtypes.GuildID  `json:"guild_id"`
	MatchID          sharedtypes.MatchID  `json:"match_id"`
	ConfirmationCode string               `json:"confirmation_code"`
	RequestedBy      sharedtypes.UserID   `json:"requested_by"`
	UserRoleIDs      []sharedtypes.RoleID `json:"user_role_ids,omitempty"`
}

// StepOutcome reports one step of the deletion cascade.
type StepOutcome struct {
	Step  string `json:"step"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type MatchDeletedPayloadV1 struct {
	GuildID          sharedtypes.GuildID   `json:"guild_id"`
	MatchID          sharedtypes.MatchID   `json:"match_id"`
	PrivateChannelID sharedtypes.ChannelID `json:"private_channel_id,omitempty"`
	PublicMessageID  sharedtypes.MessageID `json:"public_message_id,omitempty"`
	PublicChannelID  sharedtypes.ChannelID `json:"public_channel_id,omitempty"`
	Steps            []StepOutcome         `json:"steps"`
}

type MatchDeleteFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}
