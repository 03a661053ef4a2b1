package matchhandlers

import (
	"context"
	"errors"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleSetMatchTime commits an agreed time, then refreshes each surface
// independently: the channel icon and the public overview each get their own
// command so one failing rename never blocks the overview update.
func (h *MatchHandlers) HandleSetMatchTime(ctx context.Context, payload *matchevents.MatchTimeSetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetMatchTime(ctx, payload.GuildID, payload.MatchID, payload.MatchTime)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchTimeSetV1,
		matchevents.MatchTimeSetFailedV1,
	)

	if success, ok := result.Success.(*matchevents.MatchTimeSetPayloadV1); ok {
		out = append(out, h.renameResult(ctx, &success.Match)...)
		out = append(out, h.publicUpdateResult(ctx, &success.Match)...)
	}

	return out, nil
}

// HandleSetServer stores accepted server details.
func (h *MatchHandlers) HandleSetServer(ctx context.Context, payload *matchevents.MatchServerSetRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SetServer(ctx, payload)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		matchevents.MatchServerSetV1,
		matchevents.MatchServerSetFailedV1,
	), nil
}
