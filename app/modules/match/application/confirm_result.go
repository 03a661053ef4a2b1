package matchservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// ConfirmResult finalizes a recorded result. Only organizers may confirm, and
// a confirmed match cannot be confirmed again.
func (s *MatchService) ConfirmResult(ctx context.Context, payload *matchevents.MatchResultConfirmRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ConfirmResult", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		if !s.isOrganizer(payload.UserRoleIDs) {
			return confirmFailureResult(payload.GuildID, payload.MatchID, ErrOrganizerOnly.Error()), nil
		}

		match, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return confirmFailureResult(payload.GuildID, payload.MatchID, "match not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}

		if match.Result == nil || match.Status == matchtypes.StatusPending {
			return confirmFailureResult(payload.GuildID, payload.MatchID, ErrNoRecordedResult.Error()), nil
		}

		if match.Status == matchtypes.StatusConfirmed {
			return confirmFailureResult(payload.GuildID, payload.MatchID, ErrAlreadyFinalized.Error()), nil
		}

		if err := s.repo.SetStatusAndResult(ctx, payload.MatchID, matchtypes.StatusConfirmed, match.Result); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to confirm result: %w", err)
		}
		match, err = s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchResultConfirmedPayloadV1{
				Match:          *match,
				Result:         *match.Result,
				ArchiveSummary: s.archiveSummary(ctx, match),
			},
		}, nil
	})
}

// archiveSummary builds the closing text for the private channel: the final
// score plus any accepted server details so they survive the archive.
func (s *MatchService) archiveSummary(ctx context.Context, match *matchtypes.Match) string {
	var b strings.Builder

	winner := s.teamName(ctx, match.Result.WinnerTeamID, fmt.Sprintf("team %d", match.Result.WinnerTeamID))
	fmt.Fprintf(&b, "Final: %s won", winner)
	if match.Result.Score != "" {
		fmt.Fprintf(&b, " %s", match.Result.Score)
	}
	if match.Result.Override {
		b.WriteString(" (Override)")
	}

	if raw, err := s.settings.Get(ctx, serverKey(match.ID)); err == nil && raw != "" {
		fmt.Fprintf(&b, "\nServer: %s", raw)
	}

	return b.String()
}

func confirmFailureResult(guildID sharedtypes.GuildID, id sharedtypes.MatchID, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchResultConfirmFailedPayloadV1{
			GuildID: guildID,
			MatchID: id,
			Reason:  reason,
		},
	}
}
