package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// SettingsDBImpl implements SettingsRepository with bun.
type SettingsDBImpl struct {
	DB *bun.DB
}

var _ SettingsRepository = (*SettingsDBImpl)(nil)

func (db *SettingsDBImpl) Get(ctx context.Context, key string) (string, error) {
	var model Setting
	err := db.DB.NewSelect().Model(&model).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return model.Value, nil
}

func (db *SettingsDBImpl) Set(ctx context.Context, key, value string) error {
	model := &Setting{Key: key, Value: value}
	_, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

func (db *SettingsDBImpl) Delete(ctx context.Context, key string) error {
	_, err := db.DB.NewDelete().Model((*Setting)(nil)).Where("key = ?", key).Exec(ctx)
	return err
}

// DeleteByPrefix removes every setting whose key starts with prefix and
// returns how many rows went away. Used by the match deletion cascade.
func (db *SettingsDBImpl) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	res, err := db.DB.NewDelete().
		Model((*Setting)(nil)).
		Where("key LIKE ?", prefix+"%").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete settings with prefix %q: %w", prefix, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
