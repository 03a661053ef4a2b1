package matchservice

import (
	"context"
	"strings"
	"testing"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

func pendingMatch(id sharedtypes.MatchID) *matchtypes.Match {
	return &matchtypes.Match{
		ID:      id,
		GuildID: "guild-1",
		Team1ID: 1,
		Team2ID: 2,
		Status:  matchtypes.StatusPending,
	}
}

func scheduledMatch(id sharedtypes.MatchID) *matchtypes.Match {
	m := pendingMatch(id)
	at := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	m.MatchTime = &at
	return m
}

// repoWithState keeps a single match in memory so status writes are visible
// to the reload that follows them.
func repoWithState(m *matchtypes.Match) *FakeMatchRepository {
	repo := &FakeMatchRepository{}
	repo.GetByIDFunc = func(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
		copy := *m
		return &copy, nil
	}
	repo.SetStatusAndResultFunc = func(ctx context.Context, id sharedtypes.MatchID, status matchtypes.Status, result *matchtypes.Result) error {
		m.Status = status
		m.Result = result
		return nil
	}
	return repo
}

func TestRecordResult(t *testing.T) {
	t.Run("records a result and moves to completed", func(t *testing.T) {
		state := scheduledMatch(7)
		svc := newTestService(repoWithState(state), nil, nil)

		result, err := svc.RecordResult(context.Background(), &matchevents.MatchResultRecordRequestedPayloadV1{
			GuildID:      "guild-1",
			MatchID:      7,
			WinnerTeamID: 2,
			Score:        "13-9",
			SubmittedBy:  "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		success, ok := result.Success.(*matchevents.MatchResultRecordedPayloadV1)
		if !ok {
			t.Fatalf("expected success payload, got %T", result.Success)
		}
		if success.Match.Status != matchtypes.StatusCompleted {
			t.Errorf("status = %q, want completed", success.Match.Status)
		}
		if success.Result.WinnerTeamID != 2 {
			t.Errorf("winner = %d, want 2", success.Result.WinnerTeamID)
		}
	})

	t.Run("rejects a result before a time is agreed", func(t *testing.T) {
		svc := newTestService(repoWithState(pendingMatch(7)), nil, nil)

		result, err := svc.RecordResult(context.Background(), &matchevents.MatchResultRecordRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 1, SubmittedBy: "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchResultRecordFailedPayloadV1)
		if failure.Reason != ErrTimeNotSet.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrTimeNotSet.Error())
		}
	})

	t.Run("rejects a winner outside the match", func(t *testing.T) {
		svc := newTestService(repoWithState(scheduledMatch(7)), nil, nil)

		result, err := svc.RecordResult(context.Background(), &matchevents.MatchResultRecordRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 42, SubmittedBy: "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchResultRecordFailedPayloadV1)
		if failure.Reason != ErrWinnerNotInMatch.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrWinnerNotInMatch.Error())
		}
	})

	t.Run("rejects a report on a confirmed match", func(t *testing.T) {
		state := scheduledMatch(7)
		state.Status = matchtypes.StatusConfirmed
		svc := newTestService(repoWithState(state), nil, nil)

		result, err := svc.RecordResult(context.Background(), &matchevents.MatchResultRecordRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 1, SubmittedBy: "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchResultRecordFailedPayloadV1)
		if failure.Reason != ErrAlreadyFinalized.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrAlreadyFinalized.Error())
		}
	})
}

func TestConfirmResult(t *testing.T) {
	recorded := func() *matchtypes.Match {
		m := scheduledMatch(7)
		m.Status = matchtypes.StatusCompleted
		m.Result = &matchtypes.Result{WinnerTeamID: 1, Score: "13-2", SubmittedBy: "user-1"}
		return m
	}

	t.Run("confirms a recorded result", func(t *testing.T) {
		state := recorded()
		settings := NewFakeSettingsRepository()
		settings.Values[serverKey(7)] = `{"host":"192.0.2.1:27015"}`
		svc := newTestService(repoWithState(state), settings, nil)

		result, err := svc.ConfirmResult(context.Background(), &matchevents.MatchResultConfirmRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, ConfirmedBy: "organizer-1", UserRoleIDs: organizerRoles,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		success := result.Success.(*matchevents.MatchResultConfirmedPayloadV1)
		if success.Match.Status != matchtypes.StatusConfirmed {
			t.Errorf("status = %q, want confirmed", success.Match.Status)
		}
		if !strings.Contains(success.ArchiveSummary, "192.0.2.1:27015") {
			t.Errorf("archive summary %q missing server details", success.ArchiveSummary)
		}
	})

	t.Run("rejects a second confirmation", func(t *testing.T) {
		state := recorded()
		state.Status = matchtypes.StatusConfirmed
		repo := repoWithState(state)
		svc := newTestService(repo, nil, nil)

		result, err := svc.ConfirmResult(context.Background(), &matchevents.MatchResultConfirmRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, ConfirmedBy: "organizer-1", UserRoleIDs: organizerRoles,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*matchevents.MatchResultConfirmFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T (success: %+v)", result.Failure, result.Success)
		}
		if failure.Reason != ErrAlreadyFinalized.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrAlreadyFinalized.Error())
		}
		for _, call := range repo.Calls {
			if call == "SetStatusAndResult" {
				t.Error("confirmed match should not be written again")
			}
		}
	})

	t.Run("rejects confirmation without a recorded result", func(t *testing.T) {
		svc := newTestService(repoWithState(scheduledMatch(7)), nil, nil)

		result, err := svc.ConfirmResult(context.Background(), &matchevents.MatchResultConfirmRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, ConfirmedBy: "organizer-1", UserRoleIDs: organizerRoles,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchResultConfirmFailedPayloadV1)
		if failure.Reason != ErrNoRecordedResult.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrNoRecordedResult.Error())
		}
	})

	t.Run("rejects a confirmer without the organizer role", func(t *testing.T) {
		repo := repoWithState(recorded())
		svc := newTestService(repo, nil, nil)

		result, err := svc.ConfirmResult(context.Background(), &matchevents.MatchResultConfirmRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, ConfirmedBy: "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*matchevents.MatchResultConfirmFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if failure.Reason != ErrOrganizerOnly.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrOrganizerOnly.Error())
		}
		if len(repo.Calls) != 0 {
			t.Errorf("no repository calls expected, got %v", repo.Calls)
		}
	})
}

func TestOverrideResult(t *testing.T) {
	t.Run("overrides straight from pending to confirmed", func(t *testing.T) {
		state := pendingMatch(7)
		svc := newTestService(repoWithState(state), nil, nil)

		result, err := svc.OverrideResult(context.Background(), &matchevents.MatchResultOverrideRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 1, Score: "FF", OverriddenBy: "organizer-1",
			UserRoleIDs: organizerRoles, Note: "forfeit",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		success := result.Success.(*matchevents.MatchResultConfirmedPayloadV1)
		if success.Match.Status != matchtypes.StatusConfirmed {
			t.Errorf("status = %q, want confirmed", success.Match.Status)
		}
		if !success.Result.Override {
			t.Error("expected override flag on result")
		}
		if !strings.Contains(success.ArchiveSummary, "(Override)") {
			t.Errorf("archive summary %q missing override marker", success.ArchiveSummary)
		}
	})

	t.Run("rejects a winner outside the match", func(t *testing.T) {
		svc := newTestService(repoWithState(pendingMatch(7)), nil, nil)

		result, err := svc.OverrideResult(context.Background(), &matchevents.MatchResultOverrideRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 42, OverriddenBy: "organizer-1", UserRoleIDs: organizerRoles,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchResultOverrideFailedPayloadV1)
		if failure.Reason != ErrWinnerNotInMatch.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrWinnerNotInMatch.Error())
		}
	})

	t.Run("rejects an override without the organizer role", func(t *testing.T) {
		repo := repoWithState(pendingMatch(7))
		svc := newTestService(repo, nil, nil)

		result, err := svc.OverrideResult(context.Background(), &matchevents.MatchResultOverrideRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, WinnerTeamID: 1, Score: "FF", OverriddenBy: "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*matchevents.MatchResultOverrideFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if failure.Reason != ErrOrganizerOnly.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrOrganizerOnly.Error())
		}
		if len(repo.Calls) != 0 {
			t.Errorf("no repository calls expected, got %v", repo.Calls)
		}
	})
}

func TestUpdateDetails(t *testing.T) {
	t.Run("applies organizer edits", func(t *testing.T) {
		state := pendingMatch(7)
		repo := repoWithState(state)
		repo.UpdateDetailsFunc = func(ctx context.Context, id sharedtypes.MatchID, updates *matchdb.DetailUpdates) error {
			if updates.MapName != nil {
				state.MapName = *updates.MapName
			}
			return nil
		}
		svc := newTestService(repo, nil, nil)

		mapName := "de_nuke"
		result, err := svc.UpdateDetails(context.Background(), &matchevents.MatchDetailsUpdateRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, MapName: &mapName,
			RequestedBy: "organizer-1", UserRoleIDs: organizerRoles,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		success := result.Success.(*matchevents.MatchDetailsUpdatedPayloadV1)
		if success.Match.MapName != "de_nuke" {
			t.Errorf("map = %q, want de_nuke", success.Match.MapName)
		}
	})

	t.Run("rejects an editor without the organizer role", func(t *testing.T) {
		repo := repoWithState(pendingMatch(7))
		svc := newTestService(repo, nil, nil)

		mapName := "de_nuke"
		result, err := svc.UpdateDetails(context.Background(), &matchevents.MatchDetailsUpdateRequestedPayloadV1{
			GuildID: "guild-1", MatchID: 7, MapName: &mapName,
			RequestedBy: "user-1", UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*matchevents.MatchDetailsUpdateFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if failure.Reason != ErrOrganizerOnly.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrOrganizerOnly.Error())
		}
		if len(repo.Calls) != 0 {
			t.Errorf("no repository calls expected, got %v", repo.Calls)
		}
	})
}

func TestSetMatchTime(t *testing.T) {
	t.Run("rejects a second time set", func(t *testing.T) {
		state := scheduledMatch(7)
		repo := repoWithState(state)
		repo.SetTimeIfUnsetFunc = func(ctx context.Context, id sharedtypes.MatchID, at time.Time) error {
			return matchdb.ErrNoRowsAffected
		}
		svc := newTestService(repo, nil, nil)

		result, err := svc.SetMatchTime(context.Background(), "guild-1", 7, time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*matchevents.MatchTimeSetFailedPayloadV1)
		if failure.Reason != ErrMatchTimeAlreadySet.Error() {
			t.Errorf("reason = %q, want %q", failure.Reason, ErrMatchTimeAlreadySet.Error())
		}
	})

	t.Run("sets the time once", func(t *testing.T) {
		state := pendingMatch(7)
		repo := repoWithState(state)
		at := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
		repo.SetTimeIfUnsetFunc = func(ctx context.Context, id sharedtypes.MatchID, t time.Time) error {
			state.MatchTime = &t
			return nil
		}
		svc := newTestService(repo, nil, nil)

		result, err := svc.SetMatchTime(context.Background(), "guild-1", 7, at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		success := result.Success.(*matchevents.MatchTimeSetPayloadV1)
		if !success.MatchTime.Equal(at) {
			t.Errorf("match time = %v, want %v", success.MatchTime, at)
		}
		if !success.Match.HasTime() {
			t.Error("expected reloaded match to carry the time")
		}
	})
}
