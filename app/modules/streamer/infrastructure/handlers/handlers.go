package streamerhandlers

import (
	"context"
	"fmt"

	streamerservice "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/application"
	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"github.com/The-Bracket-Club/tourney-bot/config"
)

// StreamerHandlers implements the Handlers interface for streamer events.
type StreamerHandlers struct {
	service streamerservice.Service
	helpers utils.Helpers
	cfg     config.TournamentConfig
}

// NewStreamerHandlers creates a new StreamerHandlers instance.
func NewStreamerHandlers(service streamerservice.Service, helpers utils.Helpers, cfg config.TournamentConfig) *StreamerHandlers {
	return &StreamerHandlers{
		service: service,
		helpers: helpers,
		cfg:     cfg,
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

// notifyStreamersResult pings every registered streamer of the match in the
// streamer channel. Matches nobody signed up for produce nothing.
func (h *StreamerHandlers) notifyStreamersResult(ctx context.Context, guildID sharedtypes.GuildID, matchID sharedtypes.MatchID, content string) []handlerwrapper.Result {
	if h.cfg.StreamerChannelID == "" {
		return nil
	}
	streamers, err := h.service.ListByMatch(ctx, matchID)
	if err != nil || len(streamers) == 0 {
		return nil
	}
	userIDs := make([]sharedtypes.UserID, len(streamers))
	for i, s := range streamers {
		userIDs[i] = s.StreamerID
	}
	return []handlerwrapper.Result{{
		Topic: discordevents.NotifyV1,
		Payload: &discordevents.NotifyPayloadV1{
			GuildID:   guildID,
			ChannelID: h.cfg.StreamerChannelID,
			UserIDs:   userIDs,
			Content:   fmt.Sprintf("Match %d: %s", matchID, content),
		},
	}}
}
