package streamerhandlers

import (
	"context"
	"errors"
	"fmt"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleMatchTimeSet pings registered streamers when the match gets a time.
func (h *StreamerHandlers) HandleMatchTimeSet(ctx context.Context, payload *matchevents.MatchTimeSetPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	content := fmt.Sprintf("scheduled for <t:%d:F>.", payload.MatchTime.Unix())
	return h.notifyStreamersResult(ctx, payload.Match.GuildID, payload.Match.ID, content), nil
}

// HandleResultConfirmed pings registered streamers when the result is final.
func (h *StreamerHandlers) HandleResultConfirmed(ctx context.Context, payload *matchevents.MatchResultConfirmedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	content := fmt.Sprintf("result confirmed (%s).", payload.Result.Score)
	return h.notifyStreamersResult(ctx, payload.Match.GuildID, payload.Match.ID, content), nil
}

// HandleMatchDeleted drops every signup belonging to a deleted match.
func (h *StreamerHandlers) HandleMatchDeleted(ctx context.Context, payload *matchevents.MatchDeletedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	if _, err := h.service.PurgeMatch(ctx, payload.MatchID); err != nil {
		return nil, err
	}
	return nil, nil
}
