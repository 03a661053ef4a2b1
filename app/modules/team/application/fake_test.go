package teamservice

import (
	"context"

	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// FakeTeamRepository provides a programmable stub for the teamdb.Repository
// interface.
type FakeTeamRepository struct {
	trace []string

	UpsertByRoleFunc      func(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error)
	DeactivateMissingFunc func(ctx context.Context, activeRoleIDs []sharedtypes.RoleID) (int, error)
	GetByIDFunc           func(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
	GetByRoleIDFunc       func(ctx context.Context, roleID sharedtypes.RoleID) (*teamtypes.Team, error)
	ListFunc              func(ctx context.Context) ([]teamtypes.Team, error)
}

// NewFakeTeamRepository initializes a FakeTeamRepository with an empty trace.
func NewFakeTeamRepository() *FakeTeamRepository {
	return &FakeTeamRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeTeamRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeTeamRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepository) UpsertByRole(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
	f.record("UpsertByRole")
	if f.UpsertByRoleFunc != nil {
		return f.UpsertByRoleFunc(ctx, name, roleID)
	}
	return &teamtypes.Team{Name: name, RoleID: roleID, Active: true}, nil
}

func (f *FakeTeamRepository) DeactivateMissing(ctx context.Context, activeRoleIDs []sharedtypes.RoleID) (int, error) {
	f.record("DeactivateMissing")
	if f.DeactivateMissingFunc != nil {
		return f.DeactivateMissingFunc(ctx, activeRoleIDs)
	}
	return 0, nil
}

func (f *FakeTeamRepository) GetByID(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepository) GetByRoleID(ctx context.Context, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
	f.record("GetByRoleID")
	if f.GetByRoleIDFunc != nil {
		return f.GetByRoleIDFunc(ctx, roleID)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepository) List(ctx context.Context) ([]teamtypes.Team, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

var _ teamdb.Repository = (*FakeTeamRepository)(nil)
