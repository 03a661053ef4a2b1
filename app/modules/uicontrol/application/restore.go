package uicontrolservice

import (
	"context"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	uicontrolevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/uicontrol"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// RestoreAll rebuilds the live-control index after a restart. Records older
// than the retention window or pointing at a match that no longer exists are
// purged; the rest are re-registered from stored state alone. The Discord
// messages themselves are never fetched, so a message deleted while the bot
// was down stays registered until an interaction or gateway event reports it
// dead.
func (s *UIControlService) RestoreAll(ctx context.Context, payload *uicontrolevents.RestoreRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RestoreControls", func(ctx context.Context) (results.OperationResult, error) {
		stats := uicontroltypes.RestoreStats{ByKind: make(map[uicontroltypes.ControlKind]uicontroltypes.KindStats)}

		cutoff := s.now().UTC().Add(-s.retention)
		purged, err := s.repo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return results.OperationResult{}, err
		}
		stats.Purged += purged

		controls, err := s.repo.ListActive(ctx, payload.GuildID)
		if err != nil {
			return results.OperationResult{}, err
		}
		stats.Total = len(controls)

		for i := range controls {
			control := controls[i]

			if s.purgeIfMatchGone(ctx, &control) {
				stats.Purged++
				stats.Total--
				continue
			}

			if err := s.restoreOne(ctx, &control); err != nil {
				stats.Failed++
				kindStats := stats.ByKind[control.Kind]
				kindStats.Failed++
				stats.ByKind[control.Kind] = kindStats
				s.restoration.RecordRestoreFailed(ctx, string(control.Kind))
				s.logger.WarnContext(ctx, "Control restoration failed",
					attr.ExtractCorrelationID(ctx),
					attr.String("message_id", string(control.MessageID)),
					attr.String("kind", string(control.Kind)),
					attr.Error(err),
				)
				continue
			}

			stats.Restored++
			kindStats := stats.ByKind[control.Kind]
			kindStats.Restored++
			stats.ByKind[control.Kind] = kindStats
			s.restoration.RecordRestored(ctx, string(control.Kind))
		}

		s.restoration.RecordPurged(ctx, stats.Purged)

		s.logger.InfoContext(ctx, "Control restoration completed",
			attr.ExtractCorrelationID(ctx),
			attr.Int("total", stats.Total),
			attr.Int("restored", stats.Restored),
			attr.Int("failed", stats.Failed),
			attr.Int("purged", stats.Purged),
		)

		return results.OperationResult{Success: &uicontrolevents.RestoreCompletedPayloadV1{
			GuildID: payload.GuildID,
			Stats:   stats,
		}}, nil
	})
}

// purgeIfMatchGone drops a control whose match row has vanished. A failed
// existence check keeps the record: restoration degrades to stale rather than
// destructive.
func (s *UIControlService) purgeIfMatchGone(ctx context.Context, control *uicontroltypes.Control) bool {
	if control.MatchID == 0 {
		return false
	}
	exists, err := s.matches.Exists(ctx, control.MatchID)
	if err != nil {
		s.logger.WarnContext(ctx, "Match existence check failed, keeping control",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", string(control.MessageID)),
			attr.Error(err),
		)
		return false
	}
	if exists {
		return false
	}
	if err := s.repo.Delete(ctx, control.MessageID); err != nil {
		s.logger.WarnContext(ctx, "Failed to purge orphaned control",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", string(control.MessageID)),
			attr.Error(err),
		)
		return false
	}
	return true
}

// restoreOne rebuilds one control's button state from its payload and
// registers it.
func (s *UIControlService) restoreOne(ctx context.Context, control *uicontroltypes.Control) error {
	factory, ok := s.factories[control.Kind]
	if !ok {
		return errUnknownKind(control.Kind)
	}
	buttons, err := factory(control)
	if err != nil {
		return err
	}
	restored := *control
	restored.Buttons = buttons
	s.registry.Register(restored)
	return nil
}

type errUnknownKind uicontroltypes.ControlKind

func (e errUnknownKind) Error() string {
	return "no factory registered for control kind " + string(e)
}
