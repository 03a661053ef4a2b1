package matchservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// RecordResult stores a reported outcome and moves the match to completed.
// A result needs an agreed match time first, and a confirmed match is closed
// to further reports.
func (s *MatchService) RecordResult(ctx context.Context, payload *matchevents.MatchResultRecordRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RecordResult", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		match, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return recordFailureResult(payload.GuildID, payload.MatchID, "match not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}

		if match.Status == matchtypes.StatusConfirmed {
			return recordFailureResult(payload.GuildID, payload.MatchID, ErrAlreadyFinalized.Error()), nil
		}
		if !match.HasTime() {
			return recordFailureResult(payload.GuildID, payload.MatchID, ErrTimeNotSet.Error()), nil
		}
		if payload.WinnerTeamID != match.Team1ID && payload.WinnerTeamID != match.Team2ID {
			return recordFailureResult(payload.GuildID, payload.MatchID, ErrWinnerNotInMatch.Error()), nil
		}

		result := &matchtypes.Result{
			WinnerTeamID: payload.WinnerTeamID,
			Score:        payload.Score,
			SubmittedBy:  payload.SubmittedBy,
			SubmittedAt:  time.Now().UTC(),
		}

		if err := s.repo.SetStatusAndResult(ctx, payload.MatchID, matchtypes.StatusCompleted, result); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to record result: %w", err)
		}

		updated, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchResultRecordedPayloadV1{
				Match:  *updated,
				Result: *result,
			},
		}, nil
	})
}

func recordFailureResult(guildID sharedtypes.GuildID, id sharedtypes.MatchID, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchResultRecordFailedPayloadV1{
			GuildID: guildID,
			MatchID: id,
			Reason:  reason,
		},
	}
}
