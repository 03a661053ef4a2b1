package negotiationservice

import (
	"context"
	"encoding/json"
	"fmt"

	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
)

// buildPayload turns an incoming offer body into a validated concrete payload.
// An explicit envelope wins; for time offers the raw user text is parsed
// leniently in the tournament timezone.
func (s *NegotiationService) buildPayload(
	ctx context.Context,
	kind negotiationtypes.Kind,
	raw json.RawMessage,
	rawText string,
) (negotiationtypes.Payload, error) {
	var payload negotiationtypes.Payload

	switch {
	case len(raw) > 0:
		decoded, err := negotiationtypes.DecodePayload(raw)
		if err != nil {
			return nil, err
		}
		if decoded.NegotiationKind() != kind {
			return nil, fmt.Errorf("payload kind %q does not match offer kind %q", decoded.NegotiationKind(), kind)
		}
		payload = decoded
	case kind == negotiationtypes.KindTime && rawText != "":
		proposed, err := s.parser.ParseUserTimeInput(rawText, s.loc, s.clock)
		if err != nil {
			return nil, err
		}
		payload = &negotiationtypes.TimePayload{ProposedTime: proposed, Raw: rawText}
	default:
		return nil, fmt.Errorf("offer payload is required")
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

// validateAgainstMatch checks payload constraints that need the match row.
// An offer over a field that is already settled never opens; the match module
// would refuse the commit anyway, but the rejection belongs at propose time.
func validateAgainstMatch(payload negotiationtypes.Payload, match *matchtypes.Match) error {
	switch p := payload.(type) {
	case *negotiationtypes.TimePayload:
		if match.HasTime() {
			return fmt.Errorf("match time is already set")
		}
	case *negotiationtypes.ResultPayload:
		if p.WinnerTeamID != match.Team1ID && p.WinnerTeamID != match.Team2ID {
			return fmt.Errorf("winning team is not part of this match")
		}
		if !match.HasTime() {
			return fmt.Errorf("cannot submit a result before a match time is agreed")
		}
	}
	return nil
}
