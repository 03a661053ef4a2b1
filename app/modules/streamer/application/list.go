package streamerservice

import (
	"context"
	"fmt"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// List returns every streamer signed up for a match.
func (s *StreamerService) List(ctx context.Context, payload *streamerevents.StreamerListRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ListStreamers", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		streamers, err := s.repo.ListByMatch(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, err
		}
		return results.OperationResult{Success: &streamerevents.StreamerListPayloadV1{
			GuildID:   payload.GuildID,
			MatchID:   payload.MatchID,
			Streamers: streamers,
		}}, nil
	})
}

// ListByMatch returns the registered streamers without the event wrapper.
func (s *StreamerService) ListByMatch(ctx context.Context, matchID sharedtypes.MatchID) ([]streamertypes.Streamer, error) {
	return s.repo.ListByMatch(ctx, matchID)
}

// PurgeMatch removes every signup belonging to a deleted match.
func (s *StreamerService) PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	deleted, err := s.repo.DeleteByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge streamers for match %d: %w", matchID, err)
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "Purged streamers for deleted match",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("match_id", int64(matchID)),
			attr.Int("deleted", deleted),
		)
	}
	return deleted, nil
}
