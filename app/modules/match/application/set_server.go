package matchservice

import (
	"context"
	"encoding/json"
	"fmt"

	matchevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/match"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// serverDetails is the stored shape of accepted server credentials.
type serverDetails struct {
	Host     string `json:"host"`
	Password string `json:"password,omitempty"`
	Region   string `json:"region,omitempty"`
}

func serverKey(id sharedtypes.MatchID) string {
	return fmt.Sprintf("match_%d_server", id)
}

// SetServer stores accepted server details for a match. Details live in the
// settings store rather than on the match row so they can be replaced freely
// until the match closes.
func (s *MatchService) SetServer(ctx context.Context, payload *matchevents.MatchServerSetRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "SetServer", payload.MatchID, func(ctx context.Context) (results.OperationResult, error) {
		exists, err := s.repo.Exists(ctx, payload.MatchID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to check match: %w", err)
		}
		if !exists {
			return results.OperationResult{
				Failure: &matchevents.MatchServerSetFailedPayloadV1{
					GuildID: payload.GuildID,
					MatchID: payload.MatchID,
					Reason:  "match not found",
				},
			}, nil
		}

		raw, err := json.Marshal(serverDetails{
			Host:     payload.Host,
			Password: payload.Password,
			Region:   payload.Region,
		})
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to encode server details: %w", err)
		}

		if err := s.settings.Set(ctx, serverKey(payload.MatchID), string(raw)); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to store server details: %w", err)
		}

		return results.OperationResult{
			Success: &matchevents.MatchServerSetPayloadV1{
				MatchID: payload.MatchID,
				GuildID: payload.GuildID,
				Host:    payload.Host,
			},
		}, nil
	})
}
