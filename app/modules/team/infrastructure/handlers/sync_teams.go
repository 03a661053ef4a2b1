package teamhandlers

import (
	"context"
	"errors"

	teamevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleSyncTeams handles the TeamSyncRequested event.
func (h *TeamHandlers) HandleSyncTeams(ctx context.Context, payload *teamevents.TeamSyncRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.SyncTeams(ctx, payload.GuildID)
	if err != nil {
		return nil, err
	}

	return mapOperationResult(result,
		teamevents.TeamsSyncedV1,
		teamevents.TeamSyncFailedV1,
	), nil
}
