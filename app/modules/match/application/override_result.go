package matchservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// OverrideResult lets an organizer force a result and confirmation in one
// step, skipping the agreed-time and pending-status checks a normal report
// goes through.
func (s *MatchService) OverrideResult(ctx context.Context, payload *matchevents.MatchResultOverrideRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "OverrideResult", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		if !s.isOrganizer(payload.UserRoleIDs) {
			return overrideFailureResult(payload, ErrOrganizerOnly.Error()), nil
		}

		match, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return overrideFailureResult(payload, "match not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}

		if payload.WinnerTeamID != match.Team1ID && payload.WinnerTeamID != match.Team2ID {
			return overrideFailureResult(payload, ErrWinnerNotInMatch.Error()), nil
		}

		result := &matchtypes.Result{
			WinnerTeamID: payload.WinnerTeamID,
			Score:        payload.Score,
			SubmittedBy:  payload.OverriddenBy,
			SubmittedAt:  time.Now().UTC(),
			Override:     true,
			Note:         payload.Note,
		}

		if err := s.repo.SetStatusAndResult(ctx, payload.MatchID, matchtypes.StatusConfirmed, result); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to override result: %w", err)
		}

		updated, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchResultConfirmedPayloadV1{
				Match:          *updated,
				Result:         *result,
				ArchiveSummary: s.archiveSummary(ctx, updated),
			},
		}, nil
	})
}

func overrideFailureResult(payload *matchevents.MatchResultOverrideRequestedPayloadV1, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchResultOverrideFailedPayloadV1{
			GuildID: payload.GuildID,
			MatchID: payload.MatchID,
			Reason:  reason,
		},
	}
}
