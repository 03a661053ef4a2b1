package discordevents

import (
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
)

// Outbound presentation commands consumed by the Discord gateway service.
// The backend never talks to Discord directly; it publishes these and the
// gateway renders them.
const (
	MessageSendV1    = "discord.message.send.v1"
	MessageUpdateV1  = "discord.message.update.v1"
	MessageDeleteV1  = "discord.message.delete.v1"
	ChannelCreateV1  = "discord.channel.create.v1"
	ChannelRenameV1  = "discord.channel.rename.v1"
	ChannelArchiveV1 = "discord.channel.archive.v1"
	ChannelDeleteV1  = "discord.channel.delete.v1"
	NotifyV1         = "discord.notify.v1"
)

// MessageSendPayloadV1 asks the gateway to post a message. Buttons describe
// the interactive components to attach; the gateway reports the resulting
// message ID back through the relevant bind/upsert request.
type MessageSendPayloadV1 struct {
	GuildID   sharedtypes.GuildID    `json:"guild_id"`
	ChannelID sharedtypes.ChannelID  `json:"channel_id"`
	Content   string                 `json:"content,omitempty"`
	EmbedJSON string                 `json:"embed_json,omitempty"`
	Buttons   []uicontroltypes.Button `json:"buttons,omitempty"`
	// Kind and MatchID let the gateway register the posted message as a
	// persisted control without a second round trip.
	ControlKind uicontroltypes.ControlKind `json:"control_kind,omitempty"`
	MatchID     sharedtypes.MatchID        `json:"match_id,omitempty"`
}

// MessageUpdatePayloadV1 rewrites an existing message in place.
type MessageUpdatePayloadV1 struct {
	GuildID   sharedtypes.GuildID     `json:"guild_id"`
	ChannelID sharedtypes.ChannelID   `json:"channel_id"`
	MessageID sharedtypes.MessageID   `json:"message_id"`
	Content   string                  `json:"content,omitempty"`
	EmbedJSON string                  `json:"embed_json,omitempty"`
	Buttons   []uicontroltypes.Button `json:"buttons,omitempty"`
}

type MessageDeletePayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
}

// ChannelCreatePayloadV1 asks for a private match channel under a category.
type ChannelCreatePayloadV1 struct {
	GuildID    sharedtypes.GuildID   `json:"guild_id"`
	CategoryID sharedtypes.ChannelID `json:"category_id,omitempty"`
	Name       string                `json:"name"`
	MatchID    sharedtypes.MatchID   `json:"match_id,omitempty"`
	RoleIDs    []sharedtypes.RoleID  `json:"role_ids,omitempty"`
}

type ChannelRenamePayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Name      string                `json:"name"`
}

// ChannelArchivePayloadV1 moves a channel to the archive category. Summary
// carries the final match details, server info included, so nothing is lost
// when the channel goes read-only.
type ChannelArchivePayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	Summary   string                `json:"summary,omitempty"`
}

type ChannelDeletePayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
}

// NotifyPayloadV1 pings users or roles in a channel.
type NotifyPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	ChannelID sharedtypes.ChannelID `json:"channel_id"`
	UserIDs   []sharedtypes.UserID  `json:"user_ids,omitempty"`
	RoleIDs   []sharedtypes.RoleID  `json:"role_ids,omitempty"`
	Content   string                `json:"content"`
}
