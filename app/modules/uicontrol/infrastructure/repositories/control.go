package uicontroldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
	"github.com/uptrace/bun"
)

// ControlDBImpl implements Repository with bun.
type ControlDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*ControlDBImpl)(nil)

func (db *ControlDBImpl) Upsert(ctx context.Context, control *uicontroltypes.Control) error {
	model, buttons := toDBModel(control)

	return db.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(model).
			On("CONFLICT (message_id) DO UPDATE").
			Set("channel_id = EXCLUDED.channel_id").
			Set("kind = EXCLUDED.kind").
			Set("match_id = EXCLUDED.match_id").
			Set("payload = EXCLUDED.payload").
			Set("is_active = EXCLUDED.is_active").
			Set("updated_at = current_timestamp").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert control: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*ControlButton)(nil)).
			Where("message_id = ?", control.MessageID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear control buttons: %w", err)
		}
		if len(buttons) > 0 {
			if _, err := tx.NewInsert().Model(&buttons).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert control buttons: %w", err)
			}
		}
		return nil
	})
}

func (db *ControlDBImpl) GetByMessageID(ctx context.Context, messageID sharedtypes.MessageID) (*uicontroltypes.Control, error) {
	var model Control
	err := db.DB.NewSelect().
		Model(&model).
		Relation("Buttons", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("position ASC")
		}).
		Where("uc.message_id = ?", messageID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainModel(&model), nil
}

func (db *ControlDBImpl) Deactivate(ctx context.Context, messageID sharedtypes.MessageID) error {
	res, err := db.DB.NewUpdate().
		Model((*Control)(nil)).
		Set("is_active = false").
		Set("updated_at = current_timestamp").
		Where("message_id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to deactivate control: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *ControlDBImpl) ListActive(ctx context.Context, guildID sharedtypes.GuildID) ([]uicontroltypes.Control, error) {
	var models []Control
	err := db.DB.NewSelect().
		Model(&models).
		Relation("Buttons", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("position ASC")
		}).
		Where("uc.guild_id = ?", guildID).
		Where("uc.is_active = true").
		Order("uc.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	controls := make([]uicontroltypes.Control, len(models))
	for i := range models {
		controls[i] = *toDomainModel(&models[i])
	}
	return controls, nil
}

func (db *ControlDBImpl) Delete(ctx context.Context, messageID sharedtypes.MessageID) error {
	return db.deleteWhere(ctx, func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("message_id = ?", messageID)
	}, nil)
}

func (db *ControlDBImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	var deleted int
	err := db.deleteWhere(ctx, func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("updated_at < ?", cutoff)
	}, &deleted)
	return deleted, err
}

func (db *ControlDBImpl) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	var deleted int
	err := db.deleteWhere(ctx, func(q *bun.DeleteQuery) *bun.DeleteQuery {
		return q.Where("match_id = ?", matchID)
	}, &deleted)
	return deleted, err
}

// deleteWhere removes matching controls and their button rows in one
// transaction. The button table has no FK cascade so both deletes are explicit.
func (db *ControlDBImpl) deleteWhere(ctx context.Context, where func(*bun.DeleteQuery) *bun.DeleteQuery, deleted *int) error {
	return db.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var ids []sharedtypes.MessageID
		if err := where(tx.NewDelete().Model((*Control)(nil))).
			Returning("message_id").
			Scan(ctx, &ids); err != nil {
			return fmt.Errorf("failed to delete controls: %w", err)
		}
		if deleted != nil {
			*deleted = len(ids)
		}
		if len(ids) == 0 {
			return nil
		}
		if _, err := tx.NewDelete().
			Model((*ControlButton)(nil)).
			Where("message_id IN (?)", bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete control buttons: %w", err)
		}
		return nil
	})
}
