package uicontrolservice

import (
	"context"
	"time"

	uicontroldb "github.com/The-Bracket-Club/tourney-bot/app/modules/uicontrol/infrastructure/repositories"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	uicontroltypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/uicontrol"
)

// FakeControlRepository is an in-memory Repository for service tests.
type FakeControlRepository struct {
	Rows map[sharedtypes.MessageID]*uicontroltypes.Control
}

var _ uicontroldb.Repository = (*FakeControlRepository)(nil)

func NewFakeControlRepository() *FakeControlRepository {
	return &FakeControlRepository{Rows: make(map[sharedtypes.MessageID]*uicontroltypes.Control)}
}

func (f *FakeControlRepository) Upsert(ctx context.Context, control *uicontroltypes.Control) error {
	stored := *control
	f.Rows[control.MessageID] = &stored
	return nil
}

func (f *FakeControlRepository) GetByMessageID(ctx context.Context, messageID sharedtypes.MessageID) (*uicontroltypes.Control, error) {
	row, ok := f.Rows[messageID]
	if !ok {
		return nil, uicontroldb.ErrNotFound
	}
	copy := *row
	return &copy, nil
}

func (f *FakeControlRepository) Deactivate(ctx context.Context, messageID sharedtypes.MessageID) error {
	row, ok := f.Rows[messageID]
	if !ok {
		return uicontroldb.ErrNotFound
	}
	row.IsActive = false
	return nil
}

func (f *FakeControlRepository) ListActive(ctx context.Context, guildID sharedtypes.GuildID) ([]uicontroltypes.Control, error) {
	var out []uicontroltypes.Control
	for _, row := range f.Rows {
		if row.GuildID == guildID && row.IsActive {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *FakeControlRepository) Delete(ctx context.Context, messageID sharedtypes.MessageID) error {
	delete(f.Rows, messageID)
	return nil
}

func (f *FakeControlRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n := 0
	for id, row := range f.Rows {
		if row.UpdatedAt.Before(cutoff) {
			delete(f.Rows, id)
			n++
		}
	}
	return n, nil
}

func (f *FakeControlRepository) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	n := 0
	for id, row := range f.Rows {
		if row.MatchID == matchID {
			delete(f.Rows, id)
			n++
		}
	}
	return n, nil
}

// FakeMatchChecker reports existence from a fixed set of match ids.
type FakeMatchChecker struct {
	Existing map[sharedtypes.MatchID]bool
	Err      error
}

func (f *FakeMatchChecker) Exists(ctx context.Context, id sharedtypes.MatchID) (bool, error) {
	if f.Err != nil {
		return false, f.Err
	}
	return f.Existing[id], nil
}
