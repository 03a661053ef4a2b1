package matchdb

import (
	"context"
	"time"

	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
)

// Repository is the persistence boundary of the match module.
type Repository interface {
	Create(ctx context.Context, match *matchtypes.Match) (*matchtypes.Match, error)
	GetByID(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error)
	Exists(ctx context.Context, id sharedtypes.MatchID) (bool, error)
	// SetTimeIfUnset writes the match time only when none is set yet.
	// Returns ErrNoRowsAffected when a time already exists.
	SetTimeIfUnset(ctx context.Context, id sharedtypes.MatchID, t time.Time) error
	SetStatusAndResult(ctx context.Context, id sharedtypes.MatchID, status matchtypes.Status, result *matchtypes.Result) error
	SetPrivateChannel(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID) error
	SetPublicMessage(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error
	UpdateDetails(ctx context.Context, id sharedtypes.MatchID, updates *DetailUpdates) error
	Delete(ctx context.Context, id sharedtypes.MatchID) (bool, error)
	List(ctx context.Context) ([]matchtypes.Match, error)
}

// DetailUpdates carries the optional organizer edits. Nil fields are left
// untouched.
type DetailUpdates struct {
	MatchDate  *time.Time
	MapName    *string
	Team1Side  *string
	Team2Side  *string
	ReplayURL  *string
	WeekNumber *int
}

// SettingsRepository is the tournament settings key/value store.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) (int, error)
}
