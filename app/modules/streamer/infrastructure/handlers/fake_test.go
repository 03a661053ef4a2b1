package streamerhandlers

import (
	"context"

	streamerservice "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/application"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// FakeService stubs the streamer service for handler tests.
type FakeService struct {
	RegisterFn    func(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error)
	UnregisterFn  func(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) (results.OperationResult, error)
	ListFn        func(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) (results.OperationResult, error)
	ListByMatchFn func(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error)
	PurgeMatchFn  func(ctx context.Context, matchID sharedtypes.MatchID) (int, error)

	PurgedMatches []sharedtypes.MatchID
}

var _ streamerservice.Service = (*FakeService)(nil)

func (f *FakeService) Register(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error) {
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) Unregister(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) (results.OperationResult, error) {
	if f.UnregisterFn != nil {
		return f.UnregisterFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) List(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) (results.OperationResult, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, payload)
	}
	return results.OperationResult{}, nil
}

func (f *FakeService) ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
	if f.ListByMatchFn != nil {
		return f.ListByMatchFn(ctx, matchID)
	}
	return nil, nil
}

func (f *FakeService) PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	f.PurgedMatches = append(f.PurgedMatches, matchID)
	if f.PurgeMatchFn != nil {
		return f.PurgeMatchFn(ctx, matchID)
	}
	return 0, nil
}
