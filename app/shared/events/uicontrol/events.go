package uicontrolevents

import (
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Topic constants for the uicontrol module.
const (
	ControlUpsertRequestedV1 = "uicontrol.upsert.requested.v1"
	ControlUpsertedV1        = "uicontrol.upserted.v1"
	ControlUpsertFailedV1    = "uicontrol.upsert.failed.v1"

	ControlDeactivateRequestedV1 = "uicontrol.deactivate.requested.v1"
	ControlDeactivatedV1         = "uicontrol.deactivated.v1"
	ControlDeactivateFailedV1    = "uicontrol.deactivate.failed.v1"

	RestoreRequestedV1 = "uicontrol.restore.requested.v1"
	RestoreCompletedV1 = "uicontrol.restore.completed.v1"
	RestoreFailedV1    = "uicontrol.restore.failed.v1"
)

// ControlUpsertRequestedPayloadV1 records a control message the gateway just
// posted or visibly changed.
type ControlUpsertRequestedPayloadV1 struct {
	Control uicontroltypes.Control `json:"control"`
}

type ControlUpsertedPayloadV1 struct {
	Control uicontroltypes.Control `json:"control"`
}

type ControlUpsertFailedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	Reason    string                `json:"reason"`
}

// ControlDeactivateRequestedPayloadV1 marks a control dead, typically after
// the gateway observed the message was deleted or an edit failed permanently.
type ControlDeactivateRequestedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	Reason    string                `json:"reason,omitempty"`
}

type ControlDeactivatedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
}

type ControlDeactivateFailedPayloadV1 struct {
	GuildID   sharedtypes.GuildID   `json:"guild_id"`
	MessageID sharedtypes.MessageID `json:"message_id"`
	Reason    string                `json:"reason"`
}

// RestoreRequestedPayloadV1 triggers a full restoration pass. The gateway
// sends it once its session is ready after a restart.
type RestoreRequestedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
}

type RestoreCompletedPayloadV1 struct {
	GuildID sharedtypes.GuildID         `json:"guild_id"`
	Stats   uicontroltypes.RestoreStats `json:"stats"`
}

type RestoreFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID `json:"guild_id"`
	Reason  string              `json:"reason"`
}
