package teamservice

import (
	"context"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Service defines the interface for team operations.
type Service interface {
	SyncTeams(ctx context.Context, guildID sharedtypes.GuildID) (results.OperationResult, error)
	GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
	ListTeams(ctx context.Context) ([]teamtypes.Team, error)
	ResolveMembership(ctx context.Context, team1ID, team2ID sharedtypes.TeamID, userRoleIDs []sharedtypes.RoleID) (*teamtypes.Membership, error)
}
