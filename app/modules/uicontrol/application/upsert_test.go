package uicontrolservice

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
)

func TestUpsert(t *testing.T) {
	t.Run("persists and registers an active control", func(t *testing.T) {
		repo := NewFakeControlRepository()
		svc := newRestoreService(repo, nil)

		control := *offerControl("msg-1", uuid.New())
		result, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: control})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := result.Success.(*uicontrolevents.ControlUpsertedPayloadV1); !ok {
			t.Fatalf("expected upserted payload, got %T (failure: %+v)", result.Success, result.Failure)
		}
		if _, err := repo.GetByMessageID(context.Background(), "msg-1"); err != nil {
			t.Errorf("control not persisted: %v", err)
		}
		if _, ok := svc.Resolve("msg-1"); !ok {
			t.Error("control not registered")
		}
	})

	t.Run("an inactive upsert unregisters the control", func(t *testing.T) {
		repo := NewFakeControlRepository()
		svc := newRestoreService(repo, nil)

		control := *offerControl("msg-1", uuid.New())
		if _, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: control}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		control.IsActive = false
		if _, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: control}); err != nil {
			t.Fatalf("second upsert: %v", err)
		}
		if _, ok := svc.Resolve("msg-1"); ok {
			t.Error("inactive control still registered")
		}
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		svc := newRestoreService(NewFakeControlRepository(), nil)

		payload, _ := json.Marshal(MatchControlPayload{MatchID: 7})
		control := uicontroltypes.Control{
			MessageID: "msg-1",
			GuildID:   "guild-1",
			Kind:      "poll",
			Payload:   payload,
			IsActive:  true,
		}
		result, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: control})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		failure, ok := result.Failure.(*uicontrolevents.ControlUpsertFailedPayloadV1)
		if !ok {
			t.Fatalf("expected failure, got %+v", result)
		}
		if !strings.Contains(failure.Reason, "unknown control kind") {
			t.Errorf("reason = %q, want unknown-kind rejection", failure.Reason)
		}
	})
}

func TestDeactivate(t *testing.T) {
	t.Run("marks the record dead and drops it from the index", func(t *testing.T) {
		repo := NewFakeControlRepository()
		svc := newRestoreService(repo, nil)

		control := *offerControl("msg-1", uuid.New())
		if _, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: control}); err != nil {
			t.Fatalf("upsert: %v", err)
		}

		result, err := svc.Deactivate(context.Background(), &uicontrolevents.ControlDeactivateRequestedPayloadV1{
			GuildID:   "guild-1",
			MessageID: "msg-1",
			Reason:    "message deleted",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := result.Success.(*uicontrolevents.ControlDeactivatedPayloadV1); !ok {
			t.Fatalf("expected deactivated payload, got %+v", result)
		}
		if _, ok := svc.Resolve("msg-1"); ok {
			t.Error("deactivated control still registered")
		}
		row, err := repo.GetByMessageID(context.Background(), "msg-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if row.IsActive {
			t.Error("record still active")
		}
	})

	t.Run("unknown message id is a failure", func(t *testing.T) {
		svc := newRestoreService(NewFakeControlRepository(), nil)

		result, err := svc.Deactivate(context.Background(), &uicontrolevents.ControlDeactivateRequestedPayloadV1{
			GuildID:   "guild-1",
			MessageID: "msg-missing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := result.Failure.(*uicontrolevents.ControlDeactivateFailedPayloadV1); !ok {
			t.Fatalf("expected failure, got %+v", result)
		}
	})
}

func TestPurgeMatchControls(t *testing.T) {
	repo := NewFakeControlRepository()
	svc := newRestoreService(repo, nil)

	for _, control := range []*uicontroltypes.Control{
		matchControl("msg-1", uicontroltypes.KindStreamerPanel, 7),
		matchControl("msg-2", uicontroltypes.KindMatchAdmin, 7),
		matchControl("msg-3", uicontroltypes.KindMatchAdmin, 8),
	} {
		if _, err := svc.Upsert(context.Background(), &uicontrolevents.ControlUpsertRequestedPayloadV1{Control: *control}); err != nil {
			t.Fatalf("upsert %s: %v", control.MessageID, err)
		}
	}

	deleted, err := svc.PurgeMatch(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if _, ok := svc.Resolve("msg-1"); ok {
		t.Error("purged control still registered")
	}
	if _, ok := svc.Resolve("msg-3"); !ok {
		t.Error("other match's control should survive")
	}
}
