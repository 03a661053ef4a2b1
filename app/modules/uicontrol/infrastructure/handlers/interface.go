package uicontrolhandlers

import (
	"context"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// Handlers defines the uicontrol event handlers.
type Handlers interface {
	HandleUpsert(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDeactivate(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRestore(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*UIControlHandlers)(nil)
