package teamservice

import (
	"context"
	"errors"
	"testing"

	teamdb "github.com/The-Bracket-Club/tourney-bot/app/modules/team/infrastructure/repositories"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

func TestTeamService_ResolveMembership(t *testing.T) {
	ctx := context.Background()

	team1 := &teamtypes.Team{ID: 1, Name: "Crimson Five", RoleID: "role-1", Active: true}
	team2 := &teamtypes.Team{ID: 2, Name: "Azure Squad", RoleID: "role-2", Active: true}

	teamsByID := func(f *FakeTeamRepository) {
		f.GetByIDFunc = func(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error) {
			switch id {
			case 1:
				return team1, nil
			case 2:
				return team2, nil
			}
			return nil, teamdb.ErrNotFound
		}
	}

	tests := []struct {
		name         string
		setup        func(*FakeTeamRepository)
		roles        []sharedtypes.RoleID
		wantTeam     sharedtypes.TeamID
		wantOpponent sharedtypes.TeamID
		wantNil      bool
		wantErr      error
	}{
		{
			name:         "member of team1",
			setup:        teamsByID,
			roles:        []sharedtypes.RoleID{"role-1", "unrelated"},
			wantTeam:     1,
			wantOpponent: 2,
		},
		{
			name:         "member of team2",
			setup:        teamsByID,
			roles:        []sharedtypes.RoleID{"role-2"},
			wantTeam:     2,
			wantOpponent: 1,
		},
		{
			name:    "no membership degrades to nil",
			setup:   teamsByID,
			roles:   []sharedtypes.RoleID{"spectator"},
			wantNil: true,
		},
		{
			name:    "both roles is ambiguous",
			setup:   teamsByID,
			roles:   []sharedtypes.RoleID{"role-1", "role-2"},
			wantErr: ErrAmbiguousMembership,
		},
		{
			name: "unknown teams degrade to nil membership",
			setup: func(f *FakeTeamRepository) {
				// default GetByID returns ErrNotFound
			},
			roles:   []sharedtypes.RoleID{"role-1"},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTeamRepository()
			tt.setup(repo)
			s := newTestService(repo, nil)

			got, err := s.ResolveMembership(ctx, 1, 2, tt.roles)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected nil membership, got %+v", got)
				}
				return
			}
			if got == nil || got.Team == nil {
				t.Fatalf("expected membership, got %+v", got)
			}
			if got.Team.ID != tt.wantTeam {
				t.Errorf("expected team %d, got %d", tt.wantTeam, got.Team.ID)
			}
			if got.Opponent == nil || got.Opponent.ID != tt.wantOpponent {
				t.Errorf("expected opponent %d, got %+v", tt.wantOpponent, got.Opponent)
			}
		})
	}
}
