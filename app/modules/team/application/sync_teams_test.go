package teamservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	teamevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/team"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(repo *FakeTeamRepository, roster []teamtypes.RosterEntry) *TeamService {
	return &TeamService{
		repo:    repo,
		roster:  roster,
		logger:  observability.NoOpLogger,
		metrics: metrics.NoOpMetrics{},
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}

func TestTeamService_SyncTeams(t *testing.T) {
	ctx := context.Background()
	guildID := sharedtypes.GuildID("guild-1")

	roster := []teamtypes.RosterEntry{
		{Name: "Crimson Five", RoleID: "role-1"},
		{Name: "Azure Squad", RoleID: "role-2"},
	}

	tests := []struct {
		name        string
		roster      []teamtypes.RosterEntry
		setup       func(*FakeTeamRepository)
		wantSuccess bool
		wantFailure bool
		wantErr     string
		wantTeams   int
	}{
		{
			name:   "success",
			roster: roster,
			setup: func(f *FakeTeamRepository) {
				id := sharedtypes.TeamID(0)
				f.UpsertByRoleFunc = func(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
					id++
					return &teamtypes.Team{ID: id, Name: name, RoleID: roleID, Active: true}, nil
				}
			},
			wantSuccess: true,
			wantTeams:   2,
		},
		{
			name:        "empty roster is a business failure",
			roster:      nil,
			setup:       func(f *FakeTeamRepository) {},
			wantFailure: true,
		},
		{
			name:   "upsert error propagates",
			roster: roster,
			setup: func(f *FakeTeamRepository) {
				f.UpsertByRoleFunc = func(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
					return nil, errors.New("db down")
				}
			},
			wantFailure: true,
			wantErr:     "db down",
		},
		{
			name:   "deactivate error propagates",
			roster: roster,
			setup: func(f *FakeTeamRepository) {
				f.DeactivateMissingFunc = func(ctx context.Context, activeRoleIDs []sharedtypes.RoleID) (int, error) {
					return 0, errors.New("deactivate failed")
				}
			},
			wantFailure: true,
			wantErr:     "deactivate failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeTeamRepository()
			tt.setup(repo)
			s := newTestService(repo, tt.roster)

			got, err := s.SyncTeams(ctx, guildID)

			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.wantSuccess {
				payload, ok := got.Success.(*teamevents.TeamsSyncedPayloadV1)
				if !ok {
					t.Fatalf("expected success payload, got %T", got.Success)
				}
				if len(payload.Teams) != tt.wantTeams {
					t.Errorf("expected %d teams, got %d", tt.wantTeams, len(payload.Teams))
				}
			}
			if tt.wantFailure && got.Failure == nil {
				t.Errorf("expected failure payload, got nil")
			}
		})
	}
}
