package matchhandlers

import (
	"context"
	"errors"

	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
)

// HandleConfirmResult finalizes a result: the channel goes to the archive
// with the closing summary, the icon flips, and the overview goes final.
func (h *MatchHandlers) HandleConfirmResult(ctx context.Context, payload *matchevents.MatchResultConfirmRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.ConfirmResult(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchResultConfirmedV1,
		matchevents.MatchResultConfirmFailedV1,
	)

	if success, ok := result.Success.(*matchevents.MatchResultConfirmedPayloadV1); ok {
		out = append(out, h.finalizeSurfaces(ctx, success)...)
	}

	return out, nil
}

// HandleOverrideResult forces a result through and closes the match the same
// way a normal confirmation does.
func (h *MatchHandlers) HandleOverrideResult(ctx context.Context, payload *matchevents.MatchResultOverrideRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.OverrideResult(ctx, payload)
	if err != nil {
		return nil, err
	}

	out := mapOperationResult(result,
		matchevents.MatchResultConfirmedV1,
		matchevents.MatchResultOverrideFailedV1,
	)

	if success, ok := result.Success.(*matchevents.MatchResultConfirmedPayloadV1); ok {
		out = append(out, h.finalizeSurfaces(ctx, success)...)
	}

	return out, nil
}

func (h *MatchHandlers) finalizeSurfaces(ctx context.Context, confirmed *matchevents.MatchResultConfirmedPayloadV1) []handlerwrapper.Result {
	match := confirmed.Match

	var out []handlerwrapper.Result
	out = append(out, h.renameResult(ctx, &match)...)
	out = append(out, h.publicUpdateResult(ctx, &match)...)
	out = append(out, h.archiveResult(&match, confirmed.ArchiveSummary)...)
	return out
}

func (h *MatchHandlers) archiveResult(match *matchtypes.Match, summary string) []handlerwrapper.Result {
	if match.PrivateChannelID == "" {
		return nil
	}
	return []handlerwrapper.Result{{
		Topic: discordevents.ChannelArchiveV1,
		Payload: &discordevents.ChannelArchivePayloadV1{
			GuildID:   match.GuildID,
			ChannelID: match.PrivateChannelID,
			Summary:   summary,
		},
	}}
}
