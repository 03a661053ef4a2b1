package teamdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
	"github.com/uptrace/bun"
)

// TeamDBImpl implements Repository with bun.
type TeamDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*TeamDBImpl)(nil)

// UpsertByRole inserts the team or refreshes its name and reactivates it when
// the role is already known.
func (db *TeamDBImpl) UpsertByRole(ctx context.Context, name string, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
	model := &Team{
		Name:   name,
		RoleID: roleID,
		Active: true,
	}
	_, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (role_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("active = TRUE").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert team %q: %w", name, err)
	}
	return toDomain(model), nil
}

// DeactivateMissing marks teams whose role is no longer in the roster as
// inactive and returns how many were affected.
func (db *TeamDBImpl) DeactivateMissing(ctx context.Context, activeRoleIDs []sharedtypes.RoleID) (int, error) {
	q := db.DB.NewUpdate().
		Model((*Team)(nil)).
		Set("active = FALSE").
		Where("active = TRUE")
	if len(activeRoleIDs) > 0 {
		q = q.Where("role_id NOT IN (?)", bun.In(activeRoleIDs))
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate missing teams: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (db *TeamDBImpl) GetByID(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error) {
	var model Team
	err := db.DB.NewSelect().Model(&model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (db *TeamDBImpl) GetByRoleID(ctx context.Context, roleID sharedtypes.RoleID) (*teamtypes.Team, error) {
	var model Team
	err := db.DB.NewSelect().Model(&model).Where("role_id = ?", roleID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomain(&model), nil
}

func (db *TeamDBImpl) List(ctx context.Context) ([]teamtypes.Team, error) {
	var models []Team
	if err := db.DB.NewSelect().Model(&models).Order("name ASC").Scan(ctx); err != nil {
		return nil, err
	}
	teams := make([]teamtypes.Team, len(models))
	for i := range models {
		teams[i] = *toDomain(&models[i])
	}
	return teams, nil
}

func toDomain(model *Team) *teamtypes.Team {
	if model == nil {
		return nil
	}
	return &teamtypes.Team{
		ID:        model.ID,
		Name:      model.Name,
		RoleID:    model.RoleID,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
	}
}
