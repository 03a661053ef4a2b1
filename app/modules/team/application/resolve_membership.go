package teamservice

import (
	"context"
	"errors"
	"fmt"

	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// ErrAmbiguousMembership is returned when a user carries both match team roles.
var ErrAmbiguousMembership = errors.New("user belongs to both teams of the match")

// GetTeam looks up one team by ID.
func (s *TeamService) GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error) {
	return s.repo.GetByID(ctx, id)
}

// ListTeams returns every known team, active or not.
func (s *TeamService) ListTeams(ctx context.Context) ([]teamtypes.Team, error) {
	return s.repo.List(ctx)
}

// ResolveMembership decides which side of a match the user plays on, based on
// the Discord roles they carry. A nil Membership with nil error means the user
// is on neither team; callers turn that into a permission failure, never a
// crash.
func (s *TeamService) ResolveMembership(ctx context.Context, team1ID, team2ID sharedtypes.TeamID, userRoleIDs []sharedtypes.RoleID) (*teamtypes.Membership, error) {
	team1, err := s.repo.GetByID(ctx, team1ID)
	if err != nil && !errors.Is(err, teamdb.ErrNotFound) {
		return nil, fmt.Errorf("failed to load team %d: %w", team1ID, err)
	}
	team2, err := s.repo.GetByID(ctx, team2ID)
	if err != nil && !errors.Is(err, teamdb.ErrNotFound) {
		return nil, fmt.Errorf("failed to load team %d: %w", team2ID, err)
	}

	roles := make(map[sharedtypes.RoleID]bool, len(userRoleIDs))
	for _, r := range userRoleIDs {
		roles[r] = true
	}

	onTeam1 := team1 != nil && roles[team1.RoleID]
	onTeam2 := team2 != nil && roles[team2.RoleID]

	switch {
	case onTeam1 && onTeam2:
		return nil, ErrAmbiguousMembership
	case onTeam1:
		return &teamtypes.Membership{Team: team1, Opponent: team2}, nil
	case onTeam2:
		return &teamtypes.Membership{Team: team2, Opponent: team1}, nil
	}
	return nil, nil
}
