package negotiationhandlers

import (
	"context"
	"fmt"
	"strings"

	negotiationservice "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/application"
	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// teamLookup resolves team rows for display names on offer cards.
type teamLookup interface {
	GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
}

// NegotiationHandlers implements the Handlers interface for negotiation events.
type NegotiationHandlers struct {
	service negotiationservice.Service
	teams   teamLookup
	helpers utils.Helpers
}

// NewNegotiationHandlers creates a new NegotiationHandlers instance.
func NewNegotiationHandlers(service negotiationservice.Service, teams teamLookup, helpers utils.Helpers) *NegotiationHandlers {
	return &NegotiationHandlers{
		service: service,
		teams:   teams,
		helpers: helpers,
	}
}

// mapOperationResult converts a service OperationResult to handler Results.
func mapOperationResult(
	result results.OperationResult,
	successTopic, failureTopic string,
) []handlerwrapper.Result {
	handlerResults := result.MapToHandlerResults(successTopic, failureTopic)

	wrapperResults := make([]handlerwrapper.Result, len(handlerResults))
	for i, hr := range handlerResults {
		wrapperResults[i] = handlerwrapper.Result{
			Topic:    hr.Topic,
			Payload:  hr.Payload,
			Metadata: hr.Metadata,
		}
	}
	return wrapperResults
}

func (h *NegotiationHandlers) teamName(ctx context.Context, id sharedtypes.TeamID) string {
	team, err := h.teams.GetTeam(ctx, id)
	if err != nil || team == nil {
		return fmt.Sprintf("team %d", id)
	}
	return team.Name
}

// controlKindFor maps a negotiation kind onto its persisted control kind.
func controlKindFor(kind negotiationtypes.Kind) uicontroltypes.ControlKind {
	switch kind {
	case negotiationtypes.KindTime:
		return uicontroltypes.KindTimeOffer
	case negotiationtypes.KindServer:
		return uicontroltypes.KindServerOffer
	case negotiationtypes.KindResult:
		return uicontroltypes.KindResultSubmit
	}
	return ""
}

// offerButtons builds the interactive components for an open offer.
func offerButtons(n *negotiationtypes.Negotiation, disabled bool) []uicontroltypes.Button {
	data := map[string]string{"negotiation_id": n.ID.String()}
	return []uicontroltypes.Button{
		{
			ID:       fmt.Sprintf("negotiation:accept:%s", n.ID),
			Label:    "Accept",
			Style:    "success",
			Disabled: disabled,
			Data:     data,
		},
		{
			ID:       fmt.Sprintf("negotiation:counter:%s", n.ID),
			Label:    "Counter",
			Style:    "secondary",
			Disabled: disabled,
			Data:     data,
		},
	}
}

// offerContent renders the offer card text.
func (h *NegotiationHandlers) offerContent(ctx context.Context, n *negotiationtypes.Negotiation) string {
	proposer := h.teamName(ctx, n.ProposerTeamID)
	responder := h.teamName(ctx, n.ResponderTeamID)

	var b strings.Builder
	switch p := n.Payload.(type) {
	case *negotiationtypes.TimePayload:
		fmt.Fprintf(&b, "**%s** proposes to play at <t:%d:F>", proposer, p.ProposedTime.Unix())
	case *negotiationtypes.ServerPayload:
		fmt.Fprintf(&b, "**%s** proposes server `%s`", proposer, p.Host)
		if p.Region != "" {
			fmt.Fprintf(&b, " (%s)", p.Region)
		}
	case *negotiationtypes.ResultPayload:
		fmt.Fprintf(&b, "**%s** reports %s won %s", proposer, h.teamName(ctx, p.WinnerTeamID), p.Score)
	default:
		fmt.Fprintf(&b, "**%s** made a %s offer", proposer, n.Kind)
	}

	switch n.State {
	case negotiationtypes.StateOpen:
		fmt.Fprintf(&b, "\n%s can accept or counter until <t:%d:R>.", responder, n.ExpiresAt.Unix())
	case negotiationtypes.StateAccepted:
		b.WriteString("\nAccepted.")
	case negotiationtypes.StateSuperseded:
		b.WriteString("\nSuperseded by a counter offer.")
	case negotiationtypes.StateExpired:
		b.WriteString("\nExpired without a response.")
	}
	return b.String()
}

// offerCardResult sends a fresh offer card with live buttons.
func (h *NegotiationHandlers) offerCardResult(ctx context.Context, n *negotiationtypes.Negotiation) handlerwrapper.Result {
	return handlerwrapper.Result{
		Topic: discordevents.MessageSendV1,
		Payload: &discordevents.MessageSendPayloadV1{
			GuildID:     n.GuildID,
			ChannelID:   n.ChannelID,
			Content:     h.offerContent(ctx, n),
			Buttons:     offerButtons(n, false),
			ControlKind: controlKindFor(n.Kind),
			MatchID:     n.MatchID,
		},
	}
}

// resolvedCardResult rewrites a resolved offer's message with dead buttons.
// Offers whose message was never bound get nothing.
func (h *NegotiationHandlers) resolvedCardResult(ctx context.Context, n *negotiationtypes.Negotiation) []handlerwrapper.Result {
	if n.MessageID == "" {
		return nil
	}
	return []handlerwrapper.Result{{
		Topic: discordevents.MessageUpdateV1,
		Payload: &discordevents.MessageUpdatePayloadV1{
			GuildID:   n.GuildID,
			ChannelID: n.ChannelID,
			MessageID: n.MessageID,
			Content:   h.offerContent(ctx, n),
			Buttons:   offerButtons(n, true),
		},
	}}
}
