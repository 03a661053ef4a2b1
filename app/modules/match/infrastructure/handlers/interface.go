package matchhandlers

import (
	"context"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// Handlers defines the match event handlers.
type Handlers interface {
	HandleCreateMatch(ctx context.Context, payload *matchevents.MatchCreateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleChannelBind(ctx context.Context, payload *matchevents.MatchChannelBindRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandlePublicMessageBind(ctx context.Context, payload *matchevents.MatchPublicMessageBindRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSetMatchTime(ctx context.Context, payload *matchevents.MatchTimeSetRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSetServer(ctx context.Context, payload *matchevents.MatchServerSetRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRecordResult(ctx context.Context, payload *matchevents.MatchResultRecordRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleConfirmResult(ctx context.Context, payload *matchevents.MatchResultConfirmRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleOverrideResult(ctx context.Context, payload *matchevents.MatchResultOverrideRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleUpdateDetails(ctx context.Context, payload *matchevents.MatchDetailsUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleDeleteMatch(ctx context.Context, payload *matchevents.MatchDeleteRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*MatchHandlers)(nil)
