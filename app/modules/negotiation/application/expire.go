package negotiationservice

import (
	"context"
	"errors"
	"fmt"

	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Expire marks an open offer as expired when its deadline fires. A deadline
// racing an accept or counter is normal; the late arrival resolves to a
// silent no-op.
func (s *NegotiationService) Expire(ctx context.Context, payload *negotiationevents.NegotiationExpireDuePayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ExpireNegotiation", func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.MarkExpired(ctx, payload.NegotiationID, payload.ExpiresAt); err != nil {
			if errors.Is(err, negotiationdb.ErrNotOpen) || errors.Is(err, negotiationdb.ErrNotFound) {
				s.logger.InfoContext(ctx, "Expiry deadline arrived after resolution",
					attr.String("negotiation_id", payload.NegotiationID.String()),
				)
				return results.OperationResult{}, nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to expire negotiation: %w", err)
		}

		negotiation, err := s.repo.GetByID(ctx, payload.NegotiationID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload negotiation: %w", err)
		}

		return results.OperationResult{
			Success: &negotiationevents.NegotiationExpiredPayloadV1{
				Negotiation: *negotiation,
				ExpiredAt:   payload.ExpiresAt,
			},
		}, nil
	})
}

// BindControl records where the gateway posted the offer message.
func (s *NegotiationService) BindControl(ctx context.Context, payload *negotiationevents.NegotiationControlBindRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "BindNegotiationControl", func(ctx context.Context) (results.OperationResult, error) {
		if err := s.repo.SetControlMessage(ctx, payload.NegotiationID, payload.ChannelID, payload.MessageID); err != nil {
			if errors.Is(err, negotiationdb.ErrNotFound) {
				return results.OperationResult{
					Failure: &negotiationevents.NegotiationControlBindFailedPayloadV1{
						GuildID:       payload.GuildID,
						NegotiationID: payload.NegotiationID,
						Reason:        "offer not found",
					},
				}, nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to bind control message: %w", err)
		}

		negotiation, err := s.repo.GetByID(ctx, payload.NegotiationID)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to reload negotiation: %w", err)
		}

		return results.OperationResult{
			Success: &negotiationevents.NegotiationControlBoundPayloadV1{Negotiation: *negotiation},
		}, nil
	})
}

// PurgeMatch drops every negotiation of a deleted match.
func (s *NegotiationService) PurgeMatch(ctx context.Context, matchID sharedtypes.MatchID) (int, error) {
	n, err := s.repo.DeleteByMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge negotiations: %w", err)
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "Purged negotiations for deleted match",
			attr.MatchID("match_id", matchID),
			attr.Int("count", n),
		)
	}
	return n, nil
}
