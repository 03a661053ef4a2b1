package negotiationservice

import (
	"context"
	"strings"
	"testing"
	"time"

	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"go.opentelemetry.io/otel/trace/noop"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	repo  *FakeNegotiationRepository
	queue *FakeQueueService
}

func newTestService(t *testing.T) (*NegotiationService, *testDeps) {
	t.Helper()

	repo := NewFakeNegotiationRepository()
	queue := &FakeQueueService{}
	agreedAt := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	matches := &FakeMatchLookup{Matches: map[sharedtypes.MatchID]*matchtypes.Match{
		7: {ID: 7, GuildID: "guild-1", Team1ID: 1, Team2ID: 2, Status: matchtypes.StatusPending},
		8: {ID: 8, GuildID: "guild-1", Team1ID: 1, Team2ID: 2, Status: matchtypes.StatusPending, MatchTime: &agreedAt},
	}}
	teams := &FakeTeamResolver{ByRole: map[sharedtypes.RoleID]*teamtypes.Team{
		"role-1": {ID: 1, Name: "Alpha", RoleID: "role-1"},
		"role-2": {ID: 2, Name: "Bravo", RoleID: "role-2"},
	}}

	svc := NewNegotiationService(
		repo,
		matches,
		teams,
		queue,
		time.UTC,
		24*time.Hour,
		observability.NoOpLogger,
		&metrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
	)
	svc.clock = fixedClock{at: testNow}
	return svc, &testDeps{repo: repo, queue: queue}
}

func proposeTime(raw string) *negotiationevents.NegotiationProposeRequestedPayloadV1 {
	return &negotiationevents.NegotiationProposeRequestedPayloadV1{
		GuildID:     "guild-1",
		MatchID:     7,
		Kind:        negotiationtypes.KindTime,
		RawText:     raw,
		ProposedBy:  "user-1",
		UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		ChannelID:   "chan-7",
	}
}

func TestPropose(t *testing.T) {
	t.Run("opens a time offer from raw text", func(t *testing.T) {
		svc, deps := newTestService(t)

		result, err := svc.Propose(context.Background(), proposeTime("tomorrow at 7pm"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		success, ok := result.Success.(*negotiationevents.NegotiationOpenedPayloadV1)
		if !ok {
			t.Fatalf("expected success payload, got %T (failure: %+v)", result.Success, result.Failure)
		}
		n := success.Negotiation
		if n.State != negotiationtypes.StateOpen {
			t.Errorf("state = %q, want open", n.State)
		}
		if n.ProposerTeamID != 1 || n.ResponderTeamID != 2 {
			t.Errorf("roles = %d/%d, want 1/2", n.ProposerTeamID, n.ResponderTeamID)
		}
		tp, ok := n.Payload.(*negotiationtypes.TimePayload)
		if !ok {
			t.Fatalf("payload type = %T, want *TimePayload", n.Payload)
		}
		want := time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC)
		if !tp.ProposedTime.Equal(want) {
			t.Errorf("proposed time = %v, want %v", tp.ProposedTime, want)
		}
		if !n.ExpiresAt.Equal(testNow.Add(24 * time.Hour)) {
			t.Errorf("expires at = %v, want 24h after now", n.ExpiresAt)
		}
		if len(deps.queue.Scheduled) != 1 || deps.queue.Scheduled[0] != n.ID {
			t.Errorf("expected one scheduled expiry for %s, got %v", n.ID, deps.queue.Scheduled)
		}
	})

	t.Run("rejects a second open offer of the same kind", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.Propose(context.Background(), proposeTime("friday 8pm")); err != nil {
			t.Fatalf("first propose: %v", err)
		}

		second := proposeTime("saturday 8pm")
		second.UserRoleIDs = []sharedtypes.RoleID{"role-2"}
		result, err := svc.Propose(context.Background(), second)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if !strings.Contains(failure.Reason, "already exists") {
			t.Errorf("reason = %q, want duplicate-open reason", failure.Reason)
		}
	})

	t.Run("different kinds coexist", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.Propose(context.Background(), proposeTime("friday 8pm")); err != nil {
			t.Fatalf("time propose: %v", err)
		}

		server := &negotiationevents.NegotiationProposeRequestedPayloadV1{
			GuildID:     "guild-1",
			MatchID:     7,
			Kind:        negotiationtypes.KindServer,
			Payload:     mustEncode(t, &negotiationtypes.ServerPayload{Host: "192.0.2.1:27015"}),
			ProposedBy:  "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
			ChannelID:   "chan-7",
		}
		result, err := svc.Propose(context.Background(), server)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failure != nil {
			t.Fatalf("expected success, got failure %+v", result.Failure)
		}
	})

	t.Run("rejects a proposer outside both teams", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := proposeTime("friday 8pm")
		payload.UserRoleIDs = []sharedtypes.RoleID{"role-unrelated"}
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if !strings.Contains(failure.Reason, "not on either team") {
			t.Errorf("reason = %q, want membership rejection", failure.Reason)
		}
	})

	t.Run("rejects an unknown match", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := proposeTime("friday 8pm")
		payload.MatchID = 999
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if failure.Reason != "match not found" {
			t.Errorf("reason = %q, want match not found", failure.Reason)
		}
	})

	t.Run("rejects a result offer for a team outside the match", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := &negotiationevents.NegotiationProposeRequestedPayloadV1{
			GuildID:     "guild-1",
			MatchID:     7,
			Kind:        negotiationtypes.KindResult,
			Payload:     mustEncode(t, &negotiationtypes.ResultPayload{WinnerTeamID: 42, Score: "13-7"}),
			ProposedBy:  "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		}
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if !strings.Contains(failure.Reason, "not part of this match") {
			t.Errorf("reason = %q, want winner rejection", failure.Reason)
		}
	})

	t.Run("rejects a time offer when the time is already set", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := proposeTime("sunday 6pm")
		payload.MatchID = 8
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if !strings.Contains(failure.Reason, "already set") {
			t.Errorf("reason = %q, want time-already-set rejection", failure.Reason)
		}
	})

	t.Run("rejects a result offer before a time is agreed", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := &negotiationevents.NegotiationProposeRequestedPayloadV1{
			GuildID:     "guild-1",
			MatchID:     7,
			Kind:        negotiationtypes.KindResult,
			Payload:     mustEncode(t, &negotiationtypes.ResultPayload{WinnerTeamID: 1, Score: "13-7"}),
			ProposedBy:  "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		}
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*negotiationevents.NegotiationProposeFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure payload, got %T", result.Failure)
		}
		if !strings.Contains(failure.Reason, "before a match time") {
			t.Errorf("reason = %q, want time-not-agreed rejection", failure.Reason)
		}
	})

	t.Run("opens a result offer once the time is agreed", func(t *testing.T) {
		svc, _ := newTestService(t)

		payload := &negotiationevents.NegotiationProposeRequestedPayloadV1{
			GuildID:     "guild-1",
			MatchID:     8,
			Kind:        negotiationtypes.KindResult,
			Payload:     mustEncode(t, &negotiationtypes.ResultPayload{WinnerTeamID: 1, Score: "13-7"}),
			ProposedBy:  "user-1",
			UserRoleIDs: []sharedtypes.RoleID{"role-1"},
		}
		result, err := svc.Propose(context.Background(), payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failure != nil {
			t.Fatalf("expected success, got failure %+v", result.Failure)
		}
	})

	t.Run("rejects unparsable time text", func(t *testing.T) {
		svc, _ := newTestService(t)

		result, err := svc.Propose(context.Background(), proposeTime("whenever works"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failure == nil {
			t.Fatal("expected failure for unparsable time")
		}
	})
}

func mustEncode(t *testing.T, p negotiationtypes.Payload) []byte {
	t.Helper()
	raw, err := negotiationtypes.EncodePayload(p)
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	return raw
}
