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

// SetMatchTime commits an agreed match time. The time is written at most
// once; later attempts fail so an accepted offer cannot be silently replaced.
func (s *MatchService) SetMatchTime(ctx context.Context, guildID sharedtypes.GuildID, id sharedtypes.MatchID, t time.Time) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "SetMatchTime", id, func(ctx context.Context) (results.OperationResult, error) {
		match, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return timeSetFailureResult(guildID, id, "match not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}

		if match.Status == matchtypes.StatusConfirmed {
			return timeSetFailureResult(guildID, id, ErrAlreadyFinalized.Error()), nil
		}

		if err := s.repo.SetTimeIfUnset(ctx, id, t); err != nil {
			if errors.Is(err, matchdb.ErrNoRowsAffected) {
				return timeSetFailureResult(guildID, id, ErrMatchTimeAlreadySet.Error()), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to set match time: %w", err)
		}

		updated, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchTimeSetPayloadV1{
				Match:     *updated,
				MatchTime: t,
			},
		}, nil
	})
}

func timeSetFailureResult(guildID sharedtypes.GuildID, id sharedtypes.MatchID, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchTimeSetFailedPayloadV1{
			GuildID: guildID,
			MatchID: id,
			Reason:  reason,
		},
	}
}
