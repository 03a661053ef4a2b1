package streamerservice

import (
	"context"
	"errors"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	streamerdb "github.com/The-Bracket-Club/tourney-bot/app/modules/streamer/infrastructure/repositories"
	streamerevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/streamer"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	streamertypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/streamer"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Register signs a caster up for one side of a match. Each side can have at
// most one streamer; finalized matches no longer accept signups.
func (s *StreamerService) Register(ctx context.Context, payload *streamerevents.StreamerRegisterRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RegisterStreamer", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		failure := func(reason string) results.OperationResult {
			return results.OperationResult{Failure: &streamerevents.StreamerRegistrationFailedPayloadV1{
				GuildID:    payload.GuildID,
				MatchID:    payload.MatchID,
				StreamerID: payload.StreamerID,
				TeamSide:   payload.TeamSide,
				Reason:     reason,
			}}
		}

		if !payload.TeamSide.Valid() {
			return failure("team side must be team1 or team2"), nil
		}
		if payload.StreamURL == "" {
			return failure("stream URL is required"), nil
		}

		match, err := s.matches.GetMatch(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return failure("match not found"), nil
			}
			return results.OperationResult{}, err
		}
		if match.Status == matchtypes.StatusConfirmed {
			return failure("match is already finalized"), nil
		}

		streamer, err := s.repo.Register(ctx, &streamertypes.Streamer{
			MatchID:      payload.MatchID,
			StreamerID:   payload.StreamerID,
			TeamSide:     payload.TeamSide,
			StreamURL:    payload.StreamURL,
			SteamID64:    payload.SteamID64,
			RegisteredAt: s.now().UTC(),
		})
		if err != nil {
			if errors.Is(err, streamerdb.ErrSideTaken) {
				return failure("that side already has a streamer"), nil
			}
			return results.OperationResult{}, err
		}

		return results.OperationResult{Success: &streamerevents.StreamerRegisteredPayloadV1{
			GuildID:  payload.GuildID,
			Streamer: *streamer,
		}}, nil
	})
}

// Unregister removes the caster's signup for a match.
func (s *StreamerService) Unregister(ctx context.Context, payload *streamerevents.StreamerUnregisterRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "UnregisterStreamer", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		err := s.repo.Unregister(ctx, payload.MatchID, payload.StreamerID)
		if err != nil {
			if errors.Is(err, streamerdb.ErrNotFound) {
				return results.OperationResult{Failure: &streamerevents.StreamerUnregistrationFailedPayloadV1{
					GuildID:    payload.GuildID,
					MatchID:    payload.MatchID,
					StreamerID: payload.StreamerID,
					Reason:     "no registration found for this match",
				}}, nil
			}
			return results.OperationResult{}, err
		}

		return results.OperationResult{Success: &streamerevents.StreamerUnregisteredPayloadV1{
			GuildID:    payload.GuildID,
			MatchID:    payload.MatchID,
			StreamerID: payload.StreamerID,
		}}, nil
	})
}
