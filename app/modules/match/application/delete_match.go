package matchservice

import (
	"context"
	"errors"
	"fmt"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// ConfirmationCode derives the code a requester must type back to delete the
// match.
func ConfirmationCode(id sharedtypes.MatchID) string {
	return fmt.Sprintf("DELETE-%d", id)
}

// DeleteMatch removes a match and everything hanging off it. Steps after the
// code check are best effort: each one is attempted and its outcome reported,
// so one failing step never strands the rest. Downstream modules purge their
// own rows when the deleted event lands.
func (s *MatchService) DeleteMatch(ctx context.Context, payload *matchevents.MatchDeleteRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "DeleteMatch", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		if !s.isOrganizer(payload.UserRoleIDs) {
			return deleteFailureResult(payload.GuildID, payload.MatchID, ErrOrganizerOnly.Error()), nil
		}

		if payload.ConfirmationCode != ConfirmationCode(payload.MatchID) {
			return deleteFailureResult(payload.GuildID, payload.MatchID, ErrConfirmationCodeMismatch.Error()), nil
		}

		match, err := s.repo.GetByID(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				// Already gone. Report success so a retried delete converges.
				return results.OperationResult{
					Success: &matchevents.MatchDeletedPayloadV1{
						GuildID: payload.GuildID,
						MatchID: payload.MatchID,
						Steps:   nil,
					},
				}, nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}

		var steps []matchevents.StepOutcome
		step := func(name string, fn func() error) {
			outcome := matchevents.StepOutcome{Step: name, OK: true}
			if err := fn(); err != nil {
				outcome.OK = false
				outcome.Error = err.Error()
				s.logger.WarnContext(ctx, "Deletion step failed",
					attr.ExtractCorrelationID(ctx),
					attr.MatchID("match_id", payload.MatchID),
					attr.String("step", name),
					attr.Error(err),
				)
			}
			steps = append(steps, outcome)
		}

		step("delete_settings", func() error {
			_, err := s.settings.DeleteByPrefix(ctx, fmt.Sprintf("match_%d_", payload.MatchID))
			return err
		})
		step("delete_match_row", func() error {
			_, err := s.repo.Delete(ctx, payload.MatchID)
			return err
		})

		return results.OperationResult{
			Success: &matchevents.MatchDeletedPayloadV1{
				GuildID:          payload.GuildID,
				MatchID:          payload.MatchID,
				PrivateChannelID: match.PrivateChannelID,
				PublicMessageID:  match.PublicMessageID,
				Steps:            steps,
			},
		}, nil
	})
}

func deleteFailureResult(guildID sharedtypes.GuildID, id sharedtypes.MatchID, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchDeleteFailedPayloadV1{
			GuildID: guildID,
			MatchID: id,
			Reason:  reason,
		},
	}
}
