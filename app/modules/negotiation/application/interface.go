package negotiationservice

import (
	"context"

	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Service defines the interface for negotiation operations.
type Service interface {
	Propose(ctx context.Context, payload *negotiationevents.NegotiationProposeRequestedPayloadV1) (results.OperationResult, error)
	Respond(ctx context.Context, payload *negotiationevents.NegotiationRespondRequestedPayloadV1) (results.OperationResult, error)
	Expire(ctx context.Context, payload *negotiationevents.NegotiationExpireDuePayloadV1) (results.OperationResult, error)
	BindControl(ctx context.Context, payload *negotiationevents.NegotiationControlBindRequestedPayloadV1) (results.OperationResult, error)

	// PurgeMatch drops every negotiation of a deleted match and cancels
	// their pending deadlines.
	PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
}
