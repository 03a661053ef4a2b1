package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/uptrace/bun"
)

// MatchDBImpl implements Repository with bun.
type MatchDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*MatchDBImpl)(nil)

func (db *MatchDBImpl) Create(ctx context.Context, match *matchtypes.Match) (*matchtypes.Match, error) {
	model := toDBModel(match)
	model.Status = matchtypes.StatusPending
	_, err := db.DB.NewInsert().Model(model).Returning("*").Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert match: %w", err)
	}
	return toDomainModel(model), nil
}

func (db *MatchDBImpl) GetByID(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
	var model Match
	err := db.DB.NewSelect().Model(&model).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDomainModel(&model), nil
}

func (db *MatchDBImpl) Exists(ctx context.Context, id sharedtypes.MatchID) (bool, error) {
	return db.DB.NewSelect().Model((*Match)(nil)).Where("id = ?", id).Exists(ctx)
}

// SetTimeIfUnset is the commit point of an accepted time offer. The WHERE
// guard makes the write atomic: two concurrent accepts cannot both land.
func (db *MatchDBImpl) SetTimeIfUnset(ctx context.Context, id sharedtypes.MatchID, t time.Time) error {
	res, err := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("match_time = ?", t).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Where("match_time IS NULL").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set match time: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

func (db *MatchDBImpl) SetStatusAndResult(ctx context.Context, id sharedtypes.MatchID, status matchtypes.Status, result *matchtypes.Result) error {
	q := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("status = ?", status).
		Set("updated_at = current_timestamp").
		Where("id = ?", id)
	if result != nil {
		q = q.Set("result = ?", result)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *MatchDBImpl) SetPrivateChannel(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID) error {
	res, err := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("private_channel_id = ?", channelID).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set private channel: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *MatchDBImpl) SetPublicMessage(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error {
	res, err := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("public_message_id = ?", messageID).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set public message: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *MatchDBImpl) UpdateDetails(ctx context.Context, id sharedtypes.MatchID, updates *DetailUpdates) error {
	q := db.DB.NewUpdate().
		Model((*Match)(nil)).
		Set("updated_at = current_timestamp").
		Where("id = ?", id)
	if updates.MatchDate != nil {
		q = q.Set("match_date = ?", *updates.MatchDate)
	}
	if updates.MapName != nil {
		q = q.Set("map_name = ?", *updates.MapName)
	}
	if updates.Team1Side != nil {
		q = q.Set("team1_side = ?", *updates.Team1Side)
	}
	if updates.Team2Side != nil {
		q = q.Set("team2_side = ?", *updates.Team2Side)
	}
	if updates.ReplayURL != nil {
		q = q.Set("replay_url = ?", *updates.ReplayURL)
	}
	if updates.WeekNumber != nil {
		q = q.Set("week_number = ?", *updates.WeekNumber)
	}
	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match details: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the match row and reports whether a row existed.
func (db *MatchDBImpl) Delete(ctx context.Context, id sharedtypes.MatchID) (bool, error) {
	res, err := db.DB.NewDelete().Model((*Match)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete match: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (db *MatchDBImpl) List(ctx context.Context) ([]matchtypes.Match, error) {
	var models []Match
	if err := db.DB.NewSelect().Model(&models).Order("match_date ASC", "id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	matches := make([]matchtypes.Match, len(models))
	for i := range models {
		matches[i] = *toDomainModel(&models[i])
	}
	return matches, nil
}

func toDBModel(m *matchtypes.Match) *Match {
	if m == nil {
		return nil
	}
	return &Match{
		ID:               m.ID,
		GuildID:          m.GuildID,
		Team1ID:          m.Team1ID,
		Team2ID:          m.Team2ID,
		MatchDate:        m.MatchDate,
		MatchTime:        m.MatchTime,
		MapName:          m.MapName,
		Team1Side:        m.Team1Side,
		Team2Side:        m.Team2Side,
		PrivateChannelID: m.PrivateChannelID,
		PublicMessageID:  m.PublicMessageID,
		Status:           m.Status,
		Result:           m.Result,
		ReplayURL:        m.ReplayURL,
		WeekNumber:       m.WeekNumber,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toDomainModel(m *Match) *matchtypes.Match {
	if m == nil {
		return nil
	}
	return &matchtypes.Match{
		ID:               m.ID,
		GuildID:          m.GuildID,
		Team1ID:          m.Team1ID,
		Team2ID:          m.Team2ID,
		MatchDate:        m.MatchDate,
		MatchTime:        m.MatchTime,
		MapName:          m.MapName,
		Team1Side:        m.Team1Side,
		Team2Side:        m.Team2Side,
		PrivateChannelID: m.PrivateChannelID,
		PublicMessageID:  m.PublicMessageID,
		Status:           m.Status,
		Result:           m.Result,
		ReplayURL:        m.ReplayURL,
		WeekNumber:       m.WeekNumber,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
