package uicontrolservice

import (
	"encoding/json"
	"fmt"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/google/uuid"
)

// Factory rebuilds a control's button state purely from its stored payload.
// Restoration never fetches or edits the Discord message, so everything a
// factory needs must be in the record.
type Factory func(control *uicontroltypes.Control) ([]uicontroltypes.Button, error)

// OfferControlPayload is the stored state of a negotiation offer card.
type OfferControlPayload struct {
	NegotiationID uuid.UUID `json:"negotiation_id"`
}

// MatchControlPayload is the stored state of match-scoped panels.
type MatchControlPayload struct {
	MatchID sharedtypes.MatchID `json:"match_id"`
}

// DefaultFactories returns the factory for every known control kind. The set
// is closed: restoration refuses records whose kind has no entry here.
func DefaultFactories() map[uicontroltypes.ControlKind]Factory {
	return map[uicontroltypes.ControlKind]Factory{
		uicontroltypes.KindTimeOffer:     offerFactory,
		uicontroltypes.KindServerOffer:   offerFactory,
		uicontroltypes.KindResultSubmit:  offerFactory,
		uicontroltypes.KindResultConfirm: resultConfirmFactory,
		uicontroltypes.KindStreamerPanel: streamerPanelFactory,
		uicontroltypes.KindMatchAdmin:    matchAdminFactory,
	}
}

func offerFactory(control *uicontroltypes.Control) ([]uicontroltypes.Button, error) {
	var p OfferControlPayload
	if err := json.Unmarshal(control.Payload, &p); err != nil {
		return nil, fmt.Errorf("failed to decode offer payload: %w", err)
	}
	if p.NegotiationID == uuid.Nil {
		return nil, fmt.Errorf("offer payload has no negotiation id")
	}
	data := map[string]string{"negotiation_id": p.NegotiationID.String()}
	return []uicontroltypes.Button{
		{
			ID:    fmt.Sprintf("negotiation:accept:%s", p.NegotiationID),
			Label: "Accept",
			Style: "success",
			Data:  data,
		},
		{
			ID:    fmt.Sprintf("negotiation:counter:%s", p.NegotiationID),
			Label: "Counter",
			Style: "secondary",
			Data:  data,
		},
	}, nil
}

func decodeMatchPayload(control *uicontroltypes.Control) (sharedtypes.MatchID, error) {
	var p MatchControlPayload
	if err := json.Unmarshal(control.Payload, &p); err != nil {
		return 0, fmt.Errorf("failed to decode match payload: %w", err)
	}
	if p.MatchID == 0 {
		return 0, fmt.Errorf("match payload has no match id")
	}
	return p.MatchID, nil
}

func resultConfirmFactory(control *uicontroltypes.Control) ([]uicontroltypes.Button, error) {
	matchID, err := decodeMatchPayload(control)
	if err != nil {
		return nil, err
	}
	data := map[string]string{"match_id": fmt.Sprint(matchID)}
	return []uicontroltypes.Button{
		{
			ID:    fmt.Sprintf("match:confirm:%d", matchID),
			Label: "Confirm Result",
			Style: "success",
			Data:  data,
		},
		{
			ID:    fmt.Sprintf("match:override:%d", matchID),
			Label: "Override",
			Style: "danger",
			Data:  data,
		},
	}, nil
}

func streamerPanelFactory(control *uicontroltypes.Control) ([]uicontroltypes.Button, error) {
	matchID, err := decodeMatchPayload(control)
	if err != nil {
		return nil, err
	}
	data := map[string]string{"match_id": fmt.Sprint(matchID)}
	return []uicontroltypes.Button{
		{
			ID:    fmt.Sprintf("streamer:register:%d", matchID),
			Label: "Register Stream",
			Style: "primary",
			Data:  data,
		},
		{
			ID:    fmt.Sprintf("streamer:unregister:%d", matchID),
			Label: "Unregister",
			Style: "secondary",
			Data:  data,
		},
	}, nil
}

func matchAdminFactory(control *uicontroltypes.Control) ([]uicontroltypes.Button, error) {
	matchID, err := decodeMatchPayload(control)
	if err != nil {
		return nil, err
	}
	data := map[string]string{"match_id": fmt.Sprint(matchID)}
	return []uicontroltypes.Button{
		{
			ID:    fmt.Sprintf("match:edit:%d", matchID),
			Label: "Edit Details",
			Style: "secondary",
			Data:  data,
		},
		{
			ID:    fmt.Sprintf("match:delete:%d", matchID),
			Label: "Delete Match",
			Style: "danger",
			Data:  data,
		},
	}, nil
}
