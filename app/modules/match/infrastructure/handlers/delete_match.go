package matchhandlers

import (
	"context"
	"errors"

	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleDeleteMatch runs the deletion cascade. The deleted event carries the
// surface IDs, so the Discord cleanup commands ride alongside it and other
// modules purge their own rows when the event lands.
func (h *MatchHandlers) HandleDeleteMatch(ctx context.Context, payload *matchevents.MatchDeleteRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.DeleteMatch(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchDeletedV1,
		matchevents.MatchDeleteFailedV1,
	)

	success, ok := result.Success.(*matchevents.MatchDeletedPayloadV1)
	if !ok {
		return out, nil
	}

	if success.PrivateChannelID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: discordevents.ChannelDeleteV1,
			Payload: &discordevents.ChannelDeletePayloadV1{
				GuildID:   success.GuildID,
				ChannelID: success.PrivateChannelID,
			},
		})
	}

	if success.PublicMessageID != "" && h.cfg.PublicChannelID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: discordevents.MessageDeleteV1,
			Payload: &discordevents.MessageDeletePayloadV1{
				GuildID:   success.GuildID,
				ChannelID: h.cfg.PublicChannelID,
				MessageID: success.PublicMessageID,
			},
		})
	}

	return out, nil
}
