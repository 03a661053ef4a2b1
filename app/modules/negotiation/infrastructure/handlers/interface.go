package negotiationhandlers

import (
	"context"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// Handlers defines the negotiation event handlers.
type Handlers interface {
	HandlePropose(ctx context.Context, payload *negotiationevents.NegotiationProposeRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRespond(ctx context.Context, payload *negotiationevents.NegotiationRespondRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleExpireDue(ctx context.Context, payload *negotiationevents.NegotiationExpireDuePayloadV1) ([]handlerwrapper.Result, error)
	HandleBindControl(ctx context.Context, payload *negotiationevents.NegotiationControlBindRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error)
}

var _ Handlers = (*NegotiationHandlers)(nil)
