package matchhandlers

import (
	"context"
	"errors"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleUpdateDetails applies organizer edits and refreshes the overview.
func (h *MatchHandlers) HandleUpdateDetails(ctx context.Context, payload *matchevents.MatchDetailsUpdateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.UpdateDetails(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchDetailsUpdatedV1,
		matchevents.MatchDetailsUpdateFailedV1,
	)

	if success, ok := result.Success.(*matchevents.MatchDetailsUpdatedPayloadV1); ok {
		out = append(out, h.publicUpdateResult(ctx, &success.Match)...)
	}

	return out, nil
}
