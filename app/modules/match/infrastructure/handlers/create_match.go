package matchhandlers

import (
	"context"
	"errors"
	"fmt"

	matchservice "github.com/The-Bracket-Club/tourney-bot/app/modules/match/application"
	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleCreateMatch creates the match and asks the gateway for its surfaces:
// a private channel scoped to both team roles and an overview post in the
// public channel. The gateway reports the created IDs back through the bind
// topics.
func (h *MatchHandlers) HandleCreateMatch(ctx context.Context, payload *matchevents.MatchCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.CreateMatch(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchCreatedV1,
		matchevents.MatchCreationFailedV1,
	)

	success, ok := result.Success.(*matchevents.MatchCreatedPayloadV1)
	if !ok {
		return out, nil
	}
	match := success.Match

	var roleIDs []sharedtypes.RoleID
	for _, teamID := range []sharedtypes.TeamID{match.Team1ID, match.Team2ID} {
		if team, err := h.teams.GetTeam(ctx, teamID); err == nil && team != nil {
			roleIDs = append(roleIDs, team.RoleID)
		}
	}

	name := fmt.Sprintf("%smatch-%d-%s-vs-%s",
		matchservice.IconCreated,
		match.ID,
		channelSlug(h.teamName(ctx, match.Team1ID)),
		channelSlug(h.teamName(ctx, match.Team2ID)),
	)

	out = append(out, handlerwrapper.Result{
		Topic: discordevents.ChannelCreateV1,
		Payload: &discordevents.ChannelCreatePayloadV1{
			GuildID:    match.GuildID,
			CategoryID: h.cfg.MatchCategoryID,
			Name:       name,
			MatchID:    match.ID,
			RoleIDs:    roleIDs,
		},
	})

	if h.cfg.PublicChannelID != "" {
		out = append(out, handlerwrapper.Result{
			Topic: discordevents.MessageSendV1,
			Payload: &discordevents.MessageSendPayloadV1{
				GuildID:   match.GuildID,
				ChannelID: h.cfg.PublicChannelID,
				Content:   h.overviewContent(ctx, &match),
				MatchID:   match.ID,
			},
		})
	}

	return out, nil
}

// HandleChannelBind records the private channel the gateway created.
func (h *MatchHandlers) HandleChannelBind(ctx context.Context, payload *matchevents.MatchChannelBindRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}
	if err := h.service.BindPrivateChannel(ctx, payload.MatchID, payload.ChannelID, payload.ChannelName); err != nil {
		return nil, err
	}
	return nil, nil
}

// HandlePublicMessageBind records the public overview message.
func (h *MatchHandlers) HandlePublicMessageBind(ctx context.Context, payload *matchevents.MatchPublicMessageBindRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}
	if err := h.service.BindPublicMessage(ctx, payload.MatchID, payload.MessageID); err != nil {
		return nil, err
	}
	return nil, nil
}
