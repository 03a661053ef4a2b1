package streamerdb

import (
	"context"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
)

// Repository is the persistence boundary of the streamer module.
type Repository interface {
	// Register inserts the signup. Returns ErrSideTaken when the side
	// already has a streamer for the match.
	Register(ctx context.Context, streamer *streamertypes.Streamer) (*streamertypes.Streamer, error)
	// Unregister removes the user's signup for the match. Returns
	// ErrNotFound when none exists.
	Unregister(ctx context.Context, matchID sharedtypes.MatchID, streamerID sharedtypes.UserID) error
	ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error)
	DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error)
}
