package uicontrolhandlers

import (
	"context"

	uicontrolservice "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/application"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// FakeService stubs the uicontrol service for handler tests. Each method
// delegates to its Fn field when set and returns zero values otherwise.
type FakeService struct {
	UpsertFn     func(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) (results.OperationResult, error)
	DeactivateFn func(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) (results.OperationResult, error)
	RestoreAllFn func(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) (results.OperationResult, error)
	PurgeMatchFn func(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
	ResolveFn    func(messageID sharedtypes.MessageID) (uicontroltypes.Control, bool)

	PurgedMatches []sharedtypes.MatchID
}

var _ uicontrolservice.Service = (*FakeService)(nil)

func (f *FakeService) Upsert(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) (results.OperationResult, error) {
	if f.UpsertFn != nil {
		return f.UpsertFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) Deactivate(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) (results.OperationResult, error) {
	if f.DeactivateFn != nil {
		return f.DeactivateFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) RestoreAll(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) (results.OperationResult, error) {
	if f.RestoreAllFn != nil {
		return f.RestoreAllFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	f.PurgedMatches = append(f.PurgedMatches, matchID)
	if f.PurgeMatchFn != nil {
		return f.PurgeMatchFn(ctx, matchID)
	}
	return 0, nil
}

func (f *FakeService) Resolve(messageID sharedtypes.MessageID) (uicontroltypes.Control, bool) {
	if f.ResolveFn != nil {
		return f.ResolveFn(messageID)
	}
	return uicontroltypes.Control{}, false
}
