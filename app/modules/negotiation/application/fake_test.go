package negotiationservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationqueue "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/queue"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	teamtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/team"
)

// FakeNegotiationRepository is an in-memory fake for negotiationdb.Repository.
type FakeNegotiationRepository struct {
	CreateOpenFunc func(ctx context.Context, n *negotiationtypes.Negotiation) error

	Rows  map[uuid.UUID]*negotiationtypes.Negotiation
	Calls []string
}

var _ negotiationdb.Repository = (*FakeNegotiationRepository)(nil)

func NewFakeNegotiationRepository() *FakeNegotiationRepository {
	return &FakeNegotiationRepository{Rows: map[uuid.UUID]*negotiationtypes.Negotiation{}}
}

func (f *FakeNegotiationRepository) record(name string) {
	f.Calls = append(f.Calls, name)
}

func (f *FakeNegotiationRepository) CreateOpen(ctx context.Context, n *negotiationtypes.Negotiation) error {
	f.record("CreateOpen")
	if f.CreateOpenFunc != nil {
		return f.CreateOpenFunc(ctx, n)
	}
	for _, row := range f.Rows {
		if row.MatchID == n.MatchID && row.Kind == n.Kind && row.State == negotiationtypes.StateOpen {
			return negotiationdb.ErrDuplicateOpen
		}
	}
	stored := *n
	f.Rows[n.ID] = &stored
	return nil
}

func (f *FakeNegotiationRepository) GetByID(ctx context.Context, id uuid.UUID) (*negotiationtypes.Negotiation, error) {
	f.record("GetByID")
	row, ok := f.Rows[id]
	if !ok {
		return nil, negotiationdb.ErrNotFound
	}
	copy := *row
	return &copy, nil
}

func (f *FakeNegotiationRepository) GetOpen(ctx context.Context, matchID sharedtypes.MatchID, kind negotiationtypes.Kind) (*negotiationtypes.Negotiation, error) {
	f.record("GetOpen")
	for _, row := range f.Rows {
		if row.MatchID == matchID && row.Kind == kind && row.State == negotiationtypes.StateOpen {
			copy := *row
			return &copy, nil
		}
	}
	return nil, negotiationdb.ErrNotFound
}

func (f *FakeNegotiationRepository) transition(id uuid.UUID, apply func(*negotiationtypes.Negotiation)) error {
	row, ok := f.Rows[id]
	if !ok {
		return negotiationdb.ErrNotFound
	}
	if row.State != negotiationtypes.StateOpen {
		return negotiationdb.ErrNotOpen
	}
	apply(row)
	return nil
}

func (f *FakeNegotiationRepository) MarkAccepted(ctx context.Context, id uuid.UUID, resolvedAt time.Time) error {
	f.record("MarkAccepted")
	return f.transition(id, func(n *negotiationtypes.Negotiation) {
		n.State = negotiationtypes.StateAccepted
		n.ResolvedAt = &resolvedAt
	})
}

func (f *FakeNegotiationRepository) MarkSuperseded(ctx context.Context, id, replacementID uuid.UUID, resolvedAt time.Time) error {
	f.record("MarkSuperseded")
	return f.transition(id, func(n *negotiationtypes.Negotiation) {
		n.State = negotiationtypes.StateSuperseded
		n.SupersededBy = &replacementID
		n.ResolvedAt = &resolvedAt
	})
}

func (f *FakeNegotiationRepository) MarkExpired(ctx context.Context, id uuid.UUID, expiredAt time.Time) error {
	f.record("MarkExpired")
	return f.transition(id, func(n *negotiationtypes.Negotiation) {
		n.State = negotiationtypes.StateExpired
		n.ResolvedAt = &expiredAt
	})
}

func (f *FakeNegotiationRepository) SetControlMessage(ctx context.Context, id uuid.UUID, channelID sharedtypes.ChannelID, messageID sharedtypes.MessageID) error {
	f.record("SetControlMessage")
	row, ok := f.Rows[id]
	if !ok {
		return negotiationdb.ErrNotFound
	}
	row.ChannelID = channelID
	row.MessageID = messageID
	return nil
}

func (f *FakeNegotiationRepository) DeleteByMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	f.record("DeleteByMatch")
	n := 0
	for id, row := range f.Rows {
		if row.MatchID == matchID {
			delete(f.Rows, id)
			n++
		}
	}
	return n, nil
}

// FakeQueueService records scheduled and canceled deadlines.
type FakeQueueService struct {
	Scheduled []uuid.UUID
	Canceled  []uuid.UUID
}

var _ negotiationqueue.QueueService = (*FakeQueueService)(nil)

func (f *FakeQueueService) ScheduleExpiry(ctx context.Context, guildID sharedtypes.GuildID, negotiationID uuid.UUID, expiresAt time.Time) error {
	f.Scheduled = append(f.Scheduled, negotiationID)
	return nil
}

func (f *FakeQueueService) CancelExpiry(ctx context.Context, negotiationID uuid.UUID) error {
	f.Canceled = append(f.Canceled, negotiationID)
	return nil
}

func (f *FakeQueueService) HealthCheck(ctx context.Context) error { return nil }
func (f *FakeQueueService) Start(ctx context.Context) error       { return nil }
func (f *FakeQueueService) Stop(ctx context.Context) error        { return nil }

// FakeMatchLookup serves a fixed set of matches.
type FakeMatchLookup struct {
	Matches map[sharedtypes.MatchID]*matchtypes.Match
}

func (f *FakeMatchLookup) GetMatch(ctx context.Context, id sharedtypes.MatchID) (*matchtypes.Match, error) {
	if m, ok := f.Matches[id]; ok {
		copy := *m
		return &copy, nil
	}
	return nil, matchdb.ErrNotFound
}

// FakeTeamResolver resolves membership from a role -> team table.
type FakeTeamResolver struct {
	// ByRole maps a role ID to the team it belongs to.
	ByRole map[sharedtypes.RoleID]*teamtypes.Team
}

func (f *FakeTeamResolver) ResolveMembership(ctx context.Context, team1ID, team2ID sharedtypes.TeamID, userRoleIDs []sharedtypes.RoleID) (*teamtypes.Membership, error) {
	for _, roleID := range userRoleIDs {
		team, ok := f.ByRole[roleID]
		if !ok {
			continue
		}
		if team.ID == team1ID || team.ID == team2ID {
			return &teamtypes.Membership{Team: team}, nil
		}
	}
	return nil, nil
}

// fixedClock pins time for deterministic scheduling and parsing.
type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }
