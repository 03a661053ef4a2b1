package streamerservice

import (
	"context"

	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Service is the streamer module's application boundary.
type Service interface {
	Register(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error)
	Unregister(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) (results.OperationResult, error)
	List(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) (results.OperationResult, error)
	// ListByMatch returns the registered streamers without the event wrapper.
	ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error)
	// PurgeMatch removes every signup belonging to a deleted match.
	PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
}

var _ Service = (*StreamerService)(nil)
