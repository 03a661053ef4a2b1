package matchservice

import (
	"context"
	"errors"
	"fmt"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// UpdateDetails applies organizer edits to a match. Nil fields in the payload
// are left untouched.
func (s *MatchService) UpdateDetails(ctx context.Context, payload *matchevents.MatchDetailsUpdateRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "UpdateDetails", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		if !s.isOrganizer(payload.UserRoleIDs) {
			return results.OperationResult{
				Failure: &matchevents.MatchDetailsUpdateFailedPayloadV1{
					GuildID: payload.GuildID,
					MatchID: payload.MatchID,
					Reason:  ErrOrganizerOnly.Error(),
				},
			}, nil
		}

		updates := &matchdb.DetailUpdates{
			MatchDate:  payload.MatchDate,
			MapName:    payload.MapName,
			Team1Side:  payload.Team1Side,
			Team2Side:  payload.Team2Side,
			ReplayURL:  payload.ReplayURL,
			WeekNumber: payload.WeekNumber,
		}

		if err := s.repo.UpdateDetails(ctx, payload.MatchID, updates); err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return results.OperationResult{
					Failure: &matchevents.MatchDetailsUpdateFailedPayloadV1{
						GuildID: payload.GuildID,
						MatchID: payload.MatchID,
						Reason:  "match not found",
					},
				}, nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to update match details: %w", err)
		}

		updated, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchDetailsUpdatedPayloadV1{Match: *updated},
		}, nil
	})
}
