package matchhandlers

import (
	"context"
	"fmt"
	"strings"

	matchservice "github.com/The-Bracket-Club/tourney-bot/app/modules/match/application"
	"github.com/The-Bracket-Club/tourney-bot/config"
	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/handlerwrapper"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// teamLookup resolves team rows for display names and channel permissions.
type teamLookup interface {
	GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
}

// MatchHandlers implements the Handlers interface for match events.
type MatchHandlers struct {
	service matchservice.Service
	teams   teamLookup
	helpers utils.Helpers
	cfg     config.TournamentConfig
}

// NewMatchHandlers creates a new MatchHandlers instance.
func NewMatchHandlers(service matchservice.Service, teams teamLookup, helpers utils.Helpers, cfg config.TournamentConfig) *MatchHandlers {
	return &MatchHandlers{
		service: service,
		teams:   teams,
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

func (h *MatchHandlers) teamName(ctx context.Context, id sharedtypes.TeamID) string {
	team, err := h.teams.GetTeam(ctx, id)
	if err != nil || team == nil {
		return fmt.Sprintf("team-%d", id)
	}
	return team.Name
}

// channelSlug builds a Discord-safe channel name fragment.
func channelSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '_', r == '-':
			return '-'
		}
		return -1
	}, slug)
	return strings.Trim(slug, "-")
}

// overviewContent renders the public status line for a match.
func (h *MatchHandlers) overviewContent(ctx context.Context, match *matchtypes.Match) string {
	team1 := h.teamName(ctx, match.Team1ID)
	team2 := h.teamName(ctx, match.Team2ID)

	var b strings.Builder
	fmt.Fprintf(&b, "%s **%s** vs **%s**", matchservice.StatusIcon(match), team1, team2)
	if match.MapName != "" {
		fmt.Fprintf(&b, " on %s", match.MapName)
	}
	if match.HasTime() {
		fmt.Fprintf(&b, "\nScheduled: <t:%d:F>", match.MatchTime.Unix())
	} else {
		fmt.Fprintf(&b, "\nScheduled: %s (time TBD)", match.MatchDate.Format("2006-01-02"))
	}
	if match.Result != nil {
		winner := h.teamName(ctx, match.Result.WinnerTeamID)
		fmt.Fprintf(&b, "\nResult: %s won %s", winner, match.Result.Score)
		if match.Status == matchtypes.StatusConfirmed {
			b.WriteString(" (final)")
		}
	}
	return b.String()
}

// publicUpdateResult builds the overview message rewrite, or nothing when the
// match has no public message bound yet.
func (h *MatchHandlers) publicUpdateResult(ctx context.Context, match *matchtypes.Match) []handlerwrapper.Result {
	if match.PublicMessageID == "" || h.cfg.PublicChannelID == "" {
		return nil
	}
	return []handlerwrapper.Result{{
		Topic: discordevents.MessageUpdateV1,
		Payload: &discordevents.MessageUpdatePayloadV1{
			GuildID:   match.GuildID,
			ChannelID: h.cfg.PublicChannelID,
			MessageID: match.PublicMessageID,
			Content:   h.overviewContent(ctx, match),
		},
	}}
}

// renameResult projects the status icon onto the private channel name.
// Rename failures are swallowed; the icon catches up on the next transition.
func (h *MatchHandlers) renameResult(ctx context.Context, match *matchtypes.Match) []handlerwrapper.Result {
	rename, err := h.service.ChannelRenameCommand(ctx, match)
	if err != nil || rename == nil {
		return nil
	}
	return []handlerwrapper.Result{{
		Topic: discordevents.ChannelRenameV1,
		Payload: &discordevents.ChannelRenamePayloadV1{
			GuildID:   match.GuildID,
			ChannelID: rename.ChannelID,
			Name:      rename.Name,
		},
	}}
}
