package teamdb

import (
	"context"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// Repository is the persistence boundary of the team module.
type Repository interface {
	UpsertByRole(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error)
	DeactivateMissing(ctx context.Context, activeRoleIDs []sharedtypes.RoleID) (int, error)
	GetByID(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
	GetByRoleID(ctx context.Context, roleID sharedtypes.RoleID) (*teamtypes.Team, error)
	List(ctx context.Context) ([]teamtypes.Team, error)
}
