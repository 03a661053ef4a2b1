package streamerdb

import (
	"context"
	"fmt"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/uptrace/bun"
)

// StreamerDBImpl implements Repository with bun.
type StreamerDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*StreamerDBImpl)(nil)

// Register claims the side through the unique index on (match_id, team_side).
// Zero rows affected means another streamer got there first.
func (db *StreamerDBImpl) Register(ctx context.Context, streamer *streamertypes.Streamer) (*streamertypes.Streamer, error) {
	model := &MatchStreamer{
		MatchID:      streamer.MatchID,
		StreamerID:   streamer.StreamerID,
		TeamSide:     streamer.TeamSide,
		StreamURL:    streamer.StreamURL,
		SteamID64:    streamer.SteamID64,
		RegisteredAt: streamer.RegisteredAt,
	}
	res, err := db.DB.NewInsert().
		Model(model).
		On("CONFLICT (match_id, team_side) DO NOTHING").
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to register streamer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrSideTaken
	}
	return toDomainModel(model), nil
}

func (db *StreamerDBImpl) Unregister(ctx context.Context, matchID sharedtypes.MatchID, streamerID sharedtypes.UserID) error {
	res, err := db.DB.NewDelete().
		Model((*MatchStreamer)(nil)).
		Where("match_id = ?", matchID).
		Where("streamer_id = ?", streamerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to unregister streamer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *StreamerDBImpl) ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
	var models []MatchStreamer
	err := db.DB.NewSelect().
		Model(&models).
		Where("match_id = ?", matchID).
		Order("team_side ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	streamers := make([]streamertypes.Streamer, len(models))
	for i := range models {
		streamers[i] = *toDomainModel(&models[i])
	}
	return streamers, nil
}

func (db *StreamerDBImpl) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	res, err := db.DB.NewDelete().
		Model((*MatchStreamer)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete match streamers: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
