package uicontrolservice

import (
	"context"
	"errors"
	"fmt"

	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Upsert persists a control the gateway posted or visibly changed and indexes
// it for interaction routing.
func (s *UIControlService) Upsert(ctx context.Context, payload *uicontrolevents.ControlUpsertRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "UpsertControl", func(ctx context.Context) (results.OperationResult, error) {
		control := payload.Control

		failure := func(reason string) results.OperationResult {
			return results.OperationResult{Failure: &uicontrolevents.ControlUpsertFailedPayloadV1{
				GuildID:   control.GuildID,
				MessageID: control.MessageID,
				Reason:    reason,
			}}
		}

		if control.MessageID == "" {
			return failure("control has no message id"), nil
		}
		if _, ok := s.factories[control.Kind]; !ok {
			return failure(fmt.Sprintf("unknown control kind %q", control.Kind)), nil
		}

		now := s.now().UTC()
		if control.CreatedAt.IsZero() {
			control.CreatedAt = now
		}
		control.UpdatedAt = now

		if err := s.repo.Upsert(ctx, &control); err != nil {
			return results.OperationResult{}, err
		}

		if control.IsActive {
			s.registry.Register(control)
		} else {
			s.registry.Unregister(control.MessageID)
		}

		return results.OperationResult{Success: &uicontrolevents.ControlUpsertedPayloadV1{
			Control: control,
		}}, nil
	})
}

// Deactivate marks a control dead and drops it from the live index.
func (s *UIControlService) Deactivate(ctx context.Context, payload *uicontrolevents.ControlDeactivateRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "DeactivateControl", func(ctx context.Context) (results.OperationResult, error) {
		err := s.repo.Deactivate(ctx, payload.MessageID)
		if err != nil {
			if errors.Is(err, uicontroldb.ErrNotFound) {
				return results.OperationResult{Failure: &uicontrolevents.ControlDeactivateFailedPayloadV1{
					GuildID:   payload.GuildID,
					MessageID: payload.MessageID,
					Reason:    "control not found",
				}}, nil
			}
			return results.OperationResult{}, err
		}

		s.registry.Unregister(payload.MessageID)

		s.logger.InfoContext(ctx, "Control deactivated",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", string(payload.MessageID)),
			attr.String("reason", payload.Reason),
		)

		return results.OperationResult{Success: &uicontrolevents.ControlDeactivatedPayloadV1{
			GuildID:   payload.GuildID,
			MessageID: payload.MessageID,
		}}, nil
	})
}

// PurgeMatch removes every control belonging to a deleted match, stored and
// live alike.
func (s *UIControlService) PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	deleted, err := s.repo.DeleteByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge controls for match %d: %w", matchID, err)
	}
	s.registry.UnregisterMatch(matchID)

	if deleted > 0 {
		s.logger.InfoContext(ctx, "Purged controls for deleted match",
			attr.ExtractCorrelationID(ctx),
			attr.Int("match_id", int(matchID)),
			attr.Int("deleted", deleted),
		)
	}
	return deleted, nil
}

// Resolve looks up a live control by message id.
func (s *UIControlService) Resolve(messageID sharedtypes.MessageID) (uicontroltypes.Control, bool) {
	return s.registry.Resolve(messageID)
}
