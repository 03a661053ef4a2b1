package matchservice

import (
	"context"
	"time"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// FakeMatchRepository is a hand-written fake for matchdb.Repository. Each
// method delegates to its Func field when set and records the call.
type FakeMatchRepository struct {
	CreateFunc             func(ctx context.Context, match *matchtypes.Match) (*matchtypes.Match, error)
	GetByIDFunc            func(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error)
	ExistsFunc             func(ctx context.Context, id sharedtypes.MatchID) (bool, error)
	SetTimeIfUnsetFunc     func(ctx context.Context, id sharedtypes.MatchID, t time.Time) error
	SetStatusAndResultFunc func(ctx context.Context, id sharedtypes.MatchID, status matchtypes.Status, result *matchtypes.Result) error
	SetPrivateChannelFunc  func(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID) error
	SetPublicMessageFunc   func(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error
	UpdateDetailsFunc      func(ctx context.Context, id sharedtypes.MatchID, updates *matchdb.DetailUpdates) error
	DeleteFunc             func(ctx context.Context, id sharedtypes.MatchID) (bool, error)
	ListFunc               func(ctx context.Context) ([]matchtypes.Match, error)

	Calls []string
}

var _ matchdb.Repository = (*FakeMatchRepository)(nil)

func (f *FakeMatchRepository) record(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *FakeMatchRepository) Create(ctx context.Context, match *matchtypes.Match) (*matchtypes.Match, error) {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, match)
	}
	created := *match
	created.ID = 1
	return &created, nil
}

func (f *FakeMatchRepository) GetByID(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, id)
	}
	return nil, matchdb.ErrNotFound
}

func (f *FakeMatchRepository) Exists(ctx context.Context, id sharedtypes.MatchID) (bool, error) {
	f.record("Exists")
	if f.ExistsFunc != nil {
		return f.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (f *FakeMatchRepository) SetTimeIfUnset(ctx context.Context, id sharedtypes.MatchID, t time.Time) error {
	f.record("SetTimeIfUnset")
	if f.SetTimeIfUnsetFunc != nil {
		return f.SetTimeIfUnsetFunc(ctx, id, t)
	}
	return nil
}

func (f *FakeMatchRepository) SetStatusAndResult(ctx context.Context, id sharedtypes.MatchID, status matchtypes.Status, result *matchtypes.Result) error {
	f.record("SetStatusAndResult")
	if f.SetStatusAndResultFunc != nil {
		return f.SetStatusAndResultFunc(ctx, id, status, result)
	}
	return nil
}

func (f *FakeMatchRepository) SetPrivateChannel(ctx context.Context, id sharedtypes.MatchID, channelID sharedtypes.ChannelID) error {
	f.record("SetPrivateChannel")
	if f.SetPrivateChannelFunc != nil {
		return f.SetPrivateChannelFunc(ctx, id, channelID)
	}
	return nil
}

func (f *FakeMatchRepository) SetPublicMessage(ctx context.Context, id sharedtypes.MatchID, messageID sharedtypes.MessageID) error {
	f.record("SetPublicMessage")
	if f.SetPublicMessageFunc != nil {
		return f.SetPublicMessageFunc(ctx, id, messageID)
	}
	return nil
}

func (f *FakeMatchRepository) UpdateDetails(ctx context.Context, id sharedtypes.MatchID, updates *matchdb.DetailUpdates) error {
	f.record("UpdateDetails")
	if f.UpdateDetailsFunc != nil {
		return f.UpdateDetailsFunc(ctx, id, updates)
	}
	return nil
}

func (f *FakeMatchRepository) Delete(ctx context.Context, id sharedtypes.MatchID) (bool, error) {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}
	return true, nil
}

func (f *FakeMatchRepository) List(ctx context.Context) ([]matchtypes.Match, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}
	return nil, nil
}

// FakeSettingsRepository is an in-memory fake for matchdb.SettingsRepository.
type FakeSettingsRepository struct {
	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string) error

	Values map[string]string
	Calls  []string
}

var _ matchdb.SettingsRepository = (*FakeSettingsRepository)(nil)

func NewFakeSettingsRepository() *FakeSettingsRepository {
	return &FakeSettingsRepository{Values: map[string]string{}}
}

func (f *FakeSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	f.Calls = append(f.Calls, "Get")
	if f.GetFunc != nil {
		return f.GetFunc(ctx, key)
	}
	v, ok := f.Values[key]
	if !ok {
		return "", matchdb.ErrNotFound
	}
	return v, nil
}

func (f *FakeSettingsRepository) Set(ctx context.Context, key, value string) error {
	f.Calls = append(f.Calls, "Set")
	if f.SetFunc != nil {
		return f.SetFunc(ctx, key, value)
	}
	f.Values[key] = value
	return nil
}

func (f *FakeSettingsRepository) Delete(ctx context.Context, key string) error {
	f.Calls = append(f.Calls, "Delete")
	delete(f.Values, key)
	return nil
}

func (f *FakeSettingsRepository) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	f.Calls = append(f.Calls, "DeleteByPrefix")
	n := 0
	for k := range f.Values {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(f.Values, k)
			n++
		}
	}
	return n, nil
}

// FakeTeamLookup satisfies the team lookup slice used for display names.
type FakeTeamLookup struct {
	GetTeamFunc func(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error)
}

func (f *FakeTeamLookup) GetTeam(ctx context.Context, id sharedtypes.TeamID) (*teamtypes.Team, error) {
	if f.GetTeamFunc != nil {
		return f.GetTeamFunc(ctx, id)
	}
	return &teamtypes.Team{ID: id, Name: "Team", Active: true}, nil
}
