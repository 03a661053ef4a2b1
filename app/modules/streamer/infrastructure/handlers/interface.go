package streamerhandlers

import (
	"context"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// Handlers defines the streamer event handlers.
type Handlers interface {
	HandleRegister(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleUnregister(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleList(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchTimeSet(ctx context.Context, payload *matchevents.MatchTimeSetPayloadV1) ([]handlerwrapper.Result, error)
	HandleResultConfirmed(ctx context.Context, payload *matchevents.MatchResultConfirmedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*StreamerHandlers)(nil)
