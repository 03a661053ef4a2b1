package negotiationhandlers

import (
	"context"
	"errors"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleRespond resolves an accept or counter on an open offer. An accept also
// issues the match command the offer stands for; a counter posts the
// replacement card.
func (h *NegotiationHandlers) HandleRespond(ctx context.Context, payload *negotiationevents.NegotiationRespondRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.Respond(ctx, payload)
	if err != nil {
		return nil, err
	}

	switch success := result.Success.(type) {
	case *negotiationevents.NegotiationAcceptedPayloadV1:
		out := mapOperationResult(result,
			negotiationevents.NegotiationAcceptedV1,
			negotiationevents.NegotiationRespondFailedV1,
		)
		if cmd := matchCommandResult(&success.Negotiation, success.AcceptedBy); cmd != nil {
			out = append(out, *cmd)
		}
		out = append(out, h.resolvedCardResult(ctx, &success.Negotiation)...)
		out = append(out, deactivateControlResult(&success.Negotiation, "offer accepted")...)
		return out, nil

	case *negotiationevents.NegotiationSupersededPayloadV1:
		out := mapOperationResult(result,
			negotiationevents.NegotiationSupersededV1,
			negotiationevents.NegotiationRespondFailedV1,
		)
		out = append(out, h.resolvedCardResult(ctx, &success.Superseded)...)
		out = append(out, deactivateControlResult(&success.Superseded, "offer countered")...)
		out = append(out, h.offerCardResult(ctx, &success.Replacement))
		return out, nil
	}

	return mapOperationResult(result,
		negotiationevents.NegotiationAcceptedV1,
		negotiationevents.NegotiationRespondFailedV1,
	), nil
}

// matchCommandResult translates an accepted offer into the match command it
// was negotiating. The match module owns the final write and its own failure
// handling.
func matchCommandResult(n *negotiationtypes.Negotiation, acceptedBy sharedtypes.UserID) *handlerwrapper.Result {
	switch p := n.Payload.(type) {
	case *negotiationtypes.TimePayload:
		return &handlerwrapper.Result{
			Topic: matchevents.MatchTimeSetRequestedV1,
			Payload: &matchevents.MatchTimeSetRequestedPayloadV1{
				GuildID:     n.GuildID,
				MatchID:     n.MatchID,
				MatchTime:   p.ProposedTime,
				RequestedBy: acceptedBy,
			},
		}
	case *negotiationtypes.ServerPayload:
		return &handlerwrapper.Result{
			Topic: matchevents.MatchServerSetRequestedV1,
			Payload: &matchevents.MatchServerSetRequestedPayloadV1{
				GuildID:     n.GuildID,
				MatchID:     n.MatchID,
				Host:        p.Host,
				Password:    p.Password,
				Region:      p.Region,
				RequestedBy: acceptedBy,
			},
		}
	case *negotiationtypes.ResultPayload:
		return &handlerwrapper.Result{
			Topic: matchevents.MatchResultRecordRequestedV1,
			Payload: &matchevents.MatchResultRecordRequestedPayloadV1{
				GuildID:      n.GuildID,
				MatchID:      n.MatchID,
				WinnerTeamID: p.WinnerTeamID,
				Score:        p.Score,
				SubmittedBy:  acceptedBy,
			},
		}
	}
	return nil
}

// deactivateControlResult retires the persisted control for a resolved offer
// so a restart does not resurrect its buttons.
func deactivateControlResult(n *negotiationtypes.Negotiation, reason string) []handlerwrapper.Result {
	if n.MessageID == "" {
		return nil
	}
	return []handlerwrapper.Result{{
		Topic: uicontrolevents.ControlDeactivateRequestedV1,
		Payload: &uicontrolevents.ControlDeactivateRequestedPayloadV1{
			GuildID:   n.GuildID,
			MessageID: n.MessageID,
			Reason:    reason,
		},
	}}
}
