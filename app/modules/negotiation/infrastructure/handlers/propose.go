package negotiationhandlers

import (
	"context"
	"errors"

	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandlePropose opens an offer and posts its card into the match channel.
func (h *NegotiationHandlers) HandlePropose(ctx context.Context, payload *negotiationevents.NegotiationProposeRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Propose(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		negotiationevents.NegotiationOpenedV1,
		negotiationevents.NegotiationProposeFailedV1,
	)

	if success, ok := result.Success.(*negotiationevents.NegotiationOpenedPayloadV1); ok {
		out = append(out, h.offerCardResult(ctx, &success.Negotiation))
	}

	return out, nil
}

// HandleBindControl records where the gateway posted the offer card.
func (h *NegotiationHandlers) HandleBindControl(ctx context.Context, payload *negotiationevents.NegotiationControlBindRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.BindControl(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		negotiationevents.NegotiationControlBoundV1,
		negotiationevents.NegotiationControlBindFailedV1,
	), nil
}
