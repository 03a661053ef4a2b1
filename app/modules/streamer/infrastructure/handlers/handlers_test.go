package streamerhandlers

import (
	"context"
	"fmt"
	"testing"
	"time"

	discordevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/discord"
	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
	"github.com/The-Bracket-Club/tourney-bot/config"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamerChannel = sharedtypes.ChannelID("chan-streamers")

// fakeStreamer builds a deterministic signup from a seeded faker.
func fakeStreamer(faker *gofakeit.Faker, matchID sharedtypes.MatchID, side sharedtypes.TeamSide) streamertypes.Streamer {
	return streamertypes.Streamer{
		MatchID:    matchID,
		StreamerID: sharedtypes.UserID(faker.Numerify("#########")),
		TeamSide:   side,
		StreamURL:  "https://twitch.tv/" + faker.Username(),
	}
}

func newTestHandlers(service *FakeService) *StreamerHandlers {
	return NewStreamerHandlers(service, nil, config.TournamentConfig{
		StreamerChannelID: streamerChannel,
	})
}

func TestHandleRegister(t *testing.T) {
	faker := gofakeit.New(42)
	signup := fakeStreamer(faker, 7, sharedtypes.TeamSideOne)

	payload := &streamerevents.StreamerRegisterRequestedPayloadV1{
		GuildID:    "guild-1",
		MatchID:    signup.MatchID,
		StreamerID: signup.StreamerID,
		TeamSide:   signup.TeamSide,
		StreamURL:  signup.StreamURL,
	}

	tests := []struct {
		name      string
		service   *FakeService
		wantTopic string
	}{
		{
			name: "success maps to registered topic",
			service: &FakeService{
				RegisterFn: func(ctx context.Context, p *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error) {
					return results.OperationResult{
						Success: &streamerevents.StreamerRegisteredPayloadV1{
							GuildID:  p.GuildID,
							Streamer: signup,
						},
					}, nil
				},
			},
			wantTopic: streamerevents.StreamerRegisteredV1,
		},
		{
			name: "taken side maps to failed topic",
			service: &FakeService{
				RegisterFn: func(ctx context.Context, p *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error) {
					return results.OperationResult{
						Failure: &streamerevents.StreamerRegistrationFailedPayloadV1{
							GuildID:    p.GuildID,
							MatchID:    p.MatchID,
							StreamerID: p.StreamerID,
							TeamSide:   p.TeamSide,
							Reason:     "that side already has a streamer",
						},
					}, nil
				},
			},
			wantTopic: streamerevents.StreamerRegistrationFailedV1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlers(tt.service)

			handlerResults, err := h.HandleRegister(context.Background(), payload)
			require.NoError(t, err)
			require.Len(t, handlerResults, 1)
			assert.Equal(t, tt.wantTopic, handlerResults[0].Topic)
		})
	}
}

func TestHandleMatchTimeSet(t *testing.T) {
	faker := gofakeit.New(42)
	matchTime := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	streamers := []streamertypes.Streamer{
		fakeStreamer(faker, 7, sharedtypes.TeamSideOne),
		fakeStreamer(faker, 7, sharedtypes.TeamSideTwo),
	}

	payload := &matchevents.MatchTimeSetPayloadV1{
		Match: matchtypes.Match{
			ID:      7,
			GuildID: "guild-1",
		},
		MatchTime: matchTime,
	}

	t.Run("pings every registered streamer", func(t *testing.T) {
		service := &FakeService{
			ListByMatchFn: func(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
				return streamers, nil
			},
		}
		h := newTestHandlers(service)

		handlerResults, err := h.HandleMatchTimeSet(context.Background(), payload)
		require.NoError(t, err)
		require.Len(t, handlerResults, 1)
		assert.Equal(t, discordevents.NotifyV1, handlerResults[0].Topic)

		want := &discordevents.NotifyPayloadV1{
			GuildID:   "guild-1",
			ChannelID: streamerChannel,
			UserIDs:   []sharedtypes.UserID{streamers[0].StreamerID, streamers[1].StreamerID},
			Content:   fmt.Sprintf("Match 7: scheduled for <t:%d:F>.", matchTime.Unix()),
		}
		if diff := cmp.Diff(want, handlerResults[0].Payload); diff != "" {
			t.Errorf("notify payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no signups means no ping", func(t *testing.T) {
		h := newTestHandlers(&FakeService{})

		handlerResults, err := h.HandleMatchTimeSet(context.Background(), payload)
		require.NoError(t, err)
		assert.Empty(t, handlerResults)
	})

	t.Run("no streamer channel configured means no ping", func(t *testing.T) {
		service := &FakeService{
			ListByMatchFn: func(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
				return streamers, nil
			},
		}
		h := NewStreamerHandlers(service, nil, config.TournamentConfig{})

		handlerResults, err := h.HandleMatchTimeSet(context.Background(), payload)
		require.NoError(t, err)
		assert.Empty(t, handlerResults)
	})
}

func TestHandleResultConfirmed(t *testing.T) {
	faker := gofakeit.New(42)
	streamers := []streamertypes.Streamer{fakeStreamer(faker, 7, sharedtypes.TeamSideOne)}

	service := &FakeService{
		ListByMatchFn: func(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
			return streamers, nil
		},
	}
	h := newTestHandlers(service)

	handlerResults, err := h.HandleResultConfirmed(context.Background(), &matchevents.MatchResultConfirmedPayloadV1{
		Match:  matchtypes.Match{ID: 7, GuildID: "guild-1"},
		Result: matchtypes.Result{WinnerTeamID: 1, Score: "13-7"},
	})
	require.NoError(t, err)
	require.Len(t, handlerResults, 1)

	notify, ok := handlerResults[0].Payload.(*discordevents.NotifyPayloadV1)
	require.True(t, ok)
	assert.Equal(t, "Match 7: result confirmed (13-7).", notify.Content)
}

func TestStreamerHandleMatchDeleted(t *testing.T) {
	service := &FakeService{}
	h := newTestHandlers(service)

	handlerResults, err := h.HandleMatchDeleted(context.Background(), &matchevents.MatchDeletedPayloadV1{
		GuildID: "guild-1",
		MatchID: 7,
	})
	require.NoError(t, err)
	assert.Empty(t, handlerResults)
	assert.Equal(t, []sharedtypes.MatchID{7}, service.PurgedMatches)
}
