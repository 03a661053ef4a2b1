package matchhandlers

import (
	"context"
	"errors"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleRecordResult stores a reported result and refreshes the surfaces.
func (h *MatchHandlers) HandleRecordResult(ctx context.Context, payload *matchevents.MatchResultRecordRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RecordResult(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchResultRecordedV1,
		matchevents.MatchResultRecordFailedV1,
	)

	if success, ok := result.Success.(*matchevents.MatchResultRecordedPayloadV1); ok {
		out = append(out, h.renameResult(ctx, &success.Match)...)
		out = append(out, h.publicUpdateResult(ctx, &success.Match)...)
	}

	return out, nil
}
