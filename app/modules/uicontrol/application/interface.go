package uicontrolservice

import (
	"context"

	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Service is the uicontrol module's application boundary.
type Service interface {
	Upsert(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) (results.OperationResult, error)
	Deactivate(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) (results.OperationResult, error)
	RestoreAll(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) (results.OperationResult, error)
	// PurgeMatch removes every control belonging to a deleted match.
	PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
	// Resolve looks up a live control by message id.
	Resolve(messageID sharedtypes.MessageID) (uicontroltypes.Control, bool)
}

var _ Service = (*UIControlService)(nil)
