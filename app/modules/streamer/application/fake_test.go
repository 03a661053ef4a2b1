package streamerservice

import (
	"context"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
)

// FakeStreamerRepository is an in-memory Repository enforcing the one
// streamer per side rule.
type FakeStreamerRepository struct {
	Rows []streamertypes.Streamer
}

var _ streamerdb.Repository = (*FakeStreamerRepository)(nil)

func (f *FakeStreamerRepository) Register(ctx context.Context, streamer *streamertypes.Streamer) (*streamertypes.Streamer, error) {
	for _, row := range f.Rows {
		if row.MatchID == streamer.MatchID && row.TeamSide == streamer.TeamSide {
			return nil, streamerdb.ErrSideTaken
		}
	}
	f.Rows = append(f.Rows, *streamer)
	stored := *streamer
	return &stored, nil
}

func (f *FakeStreamerRepository) Unregister(ctx context.Context, matchID sharedtypes.MatchID, streamerID sharedtypes.UserID) error {
	for i, row := range f.Rows {
		if row.MatchID == matchID && row.StreamerID == streamerID {
			f.Rows = append(f.Rows[:i], f.Rows[i+1:]...)
			return nil
		}
	}
	return streamerdb.ErrNotFound
}

func (f *FakeStreamerRepository) ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
	var out []streamertypes.Streamer
	for _, row := range f.Rows {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *FakeStreamerRepository) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	var kept []streamertypes.Streamer
	deleted := 0
	for _, row := range f.Rows {
		if row.MatchID == matchID {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	f.Rows = kept
	return deleted, nil
}

// FakeMatchLookup serves matches from a fixed map.
type FakeMatchLookup struct {
	Matches map[sharedtypes.MatchID]*matchtypes.Match
}

func (f *FakeMatchLookup) GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
	match, ok := f.Matches[id]
	if !ok {
		return nil, matchdb.ErrNotFound
	}
	copy := *match
	return &copy, nil
}
