package negotiationhandlers

import (
	"context"
	"errors"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleExpireDue reacts to a due deadline. Offers resolved before the
// deadline fired produce no output at all.
func (h *NegotiationHandlers) HandleExpireDue(ctx context.Context, payload *negotiationevents.NegotiationExpireDuePayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Expire(ctx, payload)
	if err != nil {
		return nil, err
	}
	if result.Success == nil && result.Failure == nil {
		return nil, nil
	}

	out := mapOperationResult(result, negotiationevents.NegotiationExpiredV1, "")

	if success, ok := result.Success.(*negotiationevents.NegotiationExpiredPayloadV1); ok {
		out = append(out, h.resolvedCardResult(ctx, &success.Negotiation)...)
		out = append(out, deactivateControlResult(&success.Negotiation, "offer expired")...)
	}

	return out, nil
}

// HandleMatchDeleted drops every negotiation row belonging to a deleted match.
func (h *NegotiationHandlers) HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	if _, err := h.service.PurgeMatch(ctx, payload.MatchID); err != nil {
		return nil, err
	}
	return nil, nil
}
