package matchservice

import (
	"context"
	"fmt"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// CreateMatch validates the requested pairing and inserts a pending match.
func (s *MatchService) CreateMatch(ctx context.Context, payload *matchevents.MatchCreateRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "CreateMatch", 0, func(ctx context.Context) (results.OperationResult, error) {
		if payload.Team1ID == payload.Team2ID {
			return createFailureResult(payload.GuildID, ErrTeamsIdentical.Error()), nil
		}

		for _, teamID := range []sharedtypes.TeamID{payload.Team1ID, payload.Team2ID} {
			team, err := s.teams.GetTeam(ctx, teamID)
			if err != nil {
				return results.OperationResult{}, fmt.Errorf("failed to look up team %d: %w", teamID, err)
			}
			if team == nil {
				return createFailureResult(payload.GuildID, fmt.Sprintf("%s: %d", ErrUnknownTeam.Error(), teamID)), nil
			}
		}

		match := &matchtypes.Match{
			GuildID:    payload.GuildID,
			Team1ID:    payload.Team1ID,
			Team2ID:    payload.Team2ID,
			MatchDate:  payload.MatchDate,
			MapName:    payload.MapName,
			Team1Side:  payload.Team1Side,
			Team2Side:  payload.Team2Side,
			WeekNumber: payload.WeekNumber,
			Status:     matchtypes.StatusPending,
		}

		created, err := s.repo.Create(ctx, match)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to create match: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchCreatedPayloadV1{Match: *created},
		}, nil
	})
}

func createFailureResult(guildID sharedtypes.GuildID, reason string) results.OperationResult {
	return results.OperationResult{
		Failure: &matchevents.MatchCreationFailedPayloadV1{
			GuildID: guildID,
			Reason:  reason,
		},
	}
}
