package teamservice

import (
	"context"
	"errors"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	teamevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/team"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// ErrEmptyRoster is returned when the configuration declares no teams.
var ErrEmptyRoster = errors.New("no teams configured")

// SyncTeams mirrors the configured roster into the store: every configured
// team is upserted by role ID and teams dropped from the roster are
// deactivated. Runs at startup and on demand.
func (s *TeamService) SyncTeams(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "SyncTeams", func(ctx context.Context) (results.OperationResult, error) {
		if len(s.roster) == 0 {
			return syncTeamsFailureResult(guildID, ErrEmptyRoster), nil
		}

		synced := make([]teamtypes.Team, 0, len(s.roster))
		roleIDs := make([]sharedtypes.RoleID, 0, len(s.roster))
		for _, entry := range s.roster {
			team, err := s.repo.UpsertByRole(ctx, entry.Name, entry.RoleID)
			if err != nil {
				return syncTeamsFailureResult(guildID, err), err
			}
			synced = append(synced, *team)
			roleIDs = append(roleIDs, entry.RoleID)
		}

		deactivated, err := s.repo.DeactivateMissing(ctx, roleIDs)
		if err != nil {
			return syncTeamsFailureResult(guildID, err), err
		}
		if deactivated > 0 {
			s.logger.InfoContext(ctx, "Deactivated teams missing from roster",
				attr.ExtractCorrelationID(ctx),
				attr.Int("count", deactivated),
			)
		}

		return results.OperationResult{
			Success: &teamevents.TeamsSyncedPayloadV1{
				GuildID: guildID,
				Teams:   synced,
			},
		}, nil
	})
}

func syncTeamsFailureResult(guildID sharedtypes.GuildID, err error) results.OperationResult {
	return results.OperationResult{
		Failure: &teamevents.TeamSyncFailedPayloadV1{
			GuildID: guildID,
			Reason:  err.Error(),
		},
		Error: err,
	}
}
