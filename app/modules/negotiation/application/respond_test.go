package negotiationservice

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// openOffer seeds an open time negotiation proposed by team 1.
func openOffer(t *testing.T, svc *NegotiationService, deps *testDeps) *negotiationtypes.Negotiation {
	t.Helper()
	result, err := svc.Propose(context.Background(), proposeTime("tomorrow at 7pm"))
	if err != nil {
		t.Fatalf("propose: %v", err)
	}
	success, ok := result.Success.(*negotiationevents.NegotiationOpenedPayloadV1)
	if !ok {
		t.Fatalf("propose did not succeed: %+v", result.Failure)
	}
	return &success.Negotiation
}

func respond(id uuid.UUID, action negotiationevents.ResponseAction, roles ...sharedtypes.RoleID) *negotiationevents.NegotiationRespondRequestedPayloadV1 {
	return &negotiationevents.NegotiationRespondRequestedPayloadV1{
		GuildID:       "guild-1",
		NegotiationID: id,
		Action:        action,
		RespondedBy:   "user-2",
		UserRoleIDs:   roles,
	}
}

func TestRespondAccept(t *testing.T) {
	t.Run("responder accepts an open offer", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		result, err := svc.Respond(context.Background(), respond(offer.ID, negotiationevents.ActionAccept, "role-2"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		success, ok := result.Success.(*negotiationevents.NegotiationAcceptedPayloadV1)
		if !ok {
			t.Fatalf("expected accepted payload, got %T (failure: %+v)", result.Success, result.Failure)
		}
		if success.Negotiation.State != negotiationtypes.StateAccepted {
			t.Errorf("state = %q, want accepted", success.Negotiation.State)
		}
		if success.AcceptedBy != "user-2" {
			t.Errorf("accepted by = %q, want user-2", success.AcceptedBy)
		}
		if len(deps.queue.Canceled) != 1 || deps.queue.Canceled[0] != offer.ID {
			t.Errorf("expected canceled expiry for %s, got %v", offer.ID, deps.queue.Canceled)
		}
	})

	t.Run("proposer cannot accept their own offer", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		result, err := svc.Respond(context.Background(), respond(offer.ID, negotiationevents.ActionAccept, "role-1"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationRespondFailedPayloadV1)
		if !strings.Contains(failure.Reason, "opposing team") {
			t.Errorf("reason = %q, want responder-only rejection", failure.Reason)
		}
	})

	t.Run("accepting a resolved offer fails", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		if _, err := svc.Respond(context.Background(), respond(offer.ID, negotiationevents.ActionAccept, "role-2")); err != nil {
			t.Fatalf("first accept: %v", err)
		}
		result, err := svc.Respond(context.Background(), respond(offer.ID, negotiationevents.ActionAccept, "role-2"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationRespondFailedPayloadV1)
		if !strings.Contains(failure.Reason, "no longer open") {
			t.Errorf("reason = %q, want no-longer-open rejection", failure.Reason)
		}
	})
}

func TestRespondCounter(t *testing.T) {
	t.Run("counter supersedes and swaps roles", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		counter := respond(offer.ID, negotiationevents.ActionCounter, "role-2")
		counter.RawText = "friday at 9pm"
		result, err := svc.Respond(context.Background(), counter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		success, ok := result.Success.(*negotiationevents.NegotiationSupersededPayloadV1)
		if !ok {
			t.Fatalf("expected superseded payload, got %T (failure: %+v)", result.Success, result.Failure)
		}
		if success.Superseded.State != negotiationtypes.StateSuperseded {
			t.Errorf("old state = %q, want superseded", success.Superseded.State)
		}
		if success.Superseded.SupersededBy == nil || *success.Superseded.SupersededBy != success.Replacement.ID {
			t.Error("superseded offer should reference its replacement")
		}
		repl := success.Replacement
		if repl.State != negotiationtypes.StateOpen {
			t.Errorf("replacement state = %q, want open", repl.State)
		}
		if repl.ProposerTeamID != 2 || repl.ResponderTeamID != 1 {
			t.Errorf("replacement roles = %d/%d, want 2/1", repl.ProposerTeamID, repl.ResponderTeamID)
		}
		if repl.Kind != offer.Kind {
			t.Errorf("replacement kind = %q, want %q", repl.Kind, offer.Kind)
		}

		// The old deadline is gone, the new one is armed.
		if len(deps.queue.Canceled) != 1 || deps.queue.Canceled[0] != offer.ID {
			t.Errorf("canceled = %v, want [%s]", deps.queue.Canceled, offer.ID)
		}
		if len(deps.queue.Scheduled) != 2 || deps.queue.Scheduled[1] != repl.ID {
			t.Errorf("scheduled = %v, want second entry %s", deps.queue.Scheduled, repl.ID)
		}
	})

	t.Run("countering a superseded offer is rejected", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		counter := respond(offer.ID, negotiationevents.ActionCounter, "role-2")
		counter.RawText = "friday at 9pm"
		if _, err := svc.Respond(context.Background(), counter); err != nil {
			t.Fatalf("first counter: %v", err)
		}

		again := respond(offer.ID, negotiationevents.ActionCounter, "role-2")
		again.RawText = "saturday at 9pm"
		result, err := svc.Respond(context.Background(), again)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure := result.Failure.(*negotiationevents.NegotiationRespondFailedPayloadV1)
		if !strings.Contains(failure.Reason, "no longer open") {
			t.Errorf("reason = %q, want no-longer-open rejection", failure.Reason)
		}
	})
}

func TestExpire(t *testing.T) {
	t.Run("expires an open offer", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		result, err := svc.Expire(context.Background(), &negotiationevents.NegotiationExpireDuePayloadV1{
			GuildID:       "guild-1",
			NegotiationID: offer.ID,
			ExpiresAt:     offer.ExpiresAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		success, ok := result.Success.(*negotiationevents.NegotiationExpiredPayloadV1)
		if !ok {
			t.Fatalf("expected expired payload, got %T", result.Success)
		}
		if success.Negotiation.State != negotiationtypes.StateExpired {
			t.Errorf("state = %q, want expired", success.Negotiation.State)
		}
	})

	t.Run("a late deadline is a silent no-op", func(t *testing.T) {
		svc, deps := newTestService(t)
		offer := openOffer(t, svc, deps)

		if _, err := svc.Respond(context.Background(), respond(offer.ID, negotiationevents.ActionAccept, "role-2")); err != nil {
			t.Fatalf("accept: %v", err)
		}

		result, err := svc.Expire(context.Background(), &negotiationevents.NegotiationExpireDuePayloadV1{
			GuildID:       "guild-1",
			NegotiationID: offer.ID,
			ExpiresAt:     offer.ExpiresAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Success != nil || result.Failure != nil {
			t.Errorf("expected empty result, got %+v", result)
		}

		// The row kept its accepted state.
		row, err := deps.repo.GetByID(context.Background(), offer.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if row.State != negotiationtypes.StateAccepted {
			t.Errorf("state = %q, want accepted", row.State)
		}
	})
}

func TestPurgeMatch(t *testing.T) {
	svc, deps := newTestService(t)
	offer := openOffer(t, svc, deps)

	n, err := svc.PurgeMatch(context.Background(), offer.MatchID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("purged = %d, want 1", n)
	}
	if _, err := deps.repo.GetByID(context.Background(), offer.ID); err == nil {
		t.Error("expected negotiation to be gone")
	}
}
