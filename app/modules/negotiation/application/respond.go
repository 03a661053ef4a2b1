package negotiationservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Respond resolves an open offer. Accepting closes it; countering supersedes
// it and opens a replacement with the roles swapped. Either way the original
// reaches a terminal state exactly once.
func (s *NegotiationService) Respond(ctx context.Context, payload *negotiationevents.NegotiationRespondRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "RespondNegotiation", func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.OperationResult{
				Failure: &negotiationevents.NegotiationRespondFailedPayloadV1{
					GuildID:       payload.GuildID,
					NegotiationID: payload.NegotiationID,
					Reason:        reason,
				},
			}
		}

		negotiation, err := s.repo.GetByID(ctx, payload.NegotiationID)
		if err != nil {
			if errors.Is(err, negotiationdb.ErrNotFound) {
				return fail("offer not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load negotiation: %w", err)
		}

		if negotiation.State.Terminal() {
			return fail(fmt.Sprintf("offer is no longer open (%s)", negotiation.State)), nil
		}

		membership, err := s.teams.ResolveMembership(ctx, negotiation.ProposerTeamID, negotiation.ResponderTeamID, payload.UserRoleIDs)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to resolve team membership: %w", err)
		}
		if membership == nil || membership.Team.ID != negotiation.ResponderTeamID {
			return fail("only the opposing team can respond to this offer"), nil
		}

		switch payload.Action {
		case negotiationevents.ActionAccept:
			return s.accept(ctx, negotiation, payload, fail)
		case negotiationevents.ActionCounter:
			return s.counter(ctx, negotiation, payload, fail)
		}
		return fail(fmt.Sprintf("unknown response action %q", payload.Action)), nil
	})
}

func (s *NegotiationService) accept(
	ctx context.Context,
	negotiation *negotiationtypes.Negotiation,
	payload *negotiationevents.NegotiationRespondRequestedPayloadV1,
	fail func(string) results.OperationResult,
) (results.OperationResult, error) {
	now := s.clock.Now().UTC()

	if err := s.repo.MarkAccepted(ctx, negotiation.ID, now); err != nil {
		if errors.Is(err, negotiationdb.ErrNotOpen) {
			return fail("offer is no longer open"), nil
		}
		return results.OperationResult{}, fmt.Errorf("failed to accept offer: %w", err)
	}

	if err := s.queue.CancelExpiry(ctx, negotiation.ID); err != nil {
		// The expiry worker tolerates resolved offers, so a stale job is
		// harmless.
		s.logger.WarnContext(ctx, "Failed to cancel expiry job after accept")
	}

	negotiation.State = negotiationtypes.StateAccepted
	negotiation.ResolvedAt = &now

	return results.OperationResult{
		Success: &negotiationevents.NegotiationAcceptedPayloadV1{
			Negotiation: *negotiation,
			AcceptedBy:  payload.RespondedBy,
		},
	}, nil
}

func (s *NegotiationService) counter(
	ctx context.Context,
	negotiation *negotiationtypes.Negotiation,
	payload *negotiationevents.NegotiationRespondRequestedPayloadV1,
	fail func(string) results.OperationResult,
) (results.OperationResult, error) {
	match, err := s.matches.GetMatch(ctx, negotiation.MatchID)
	if err != nil {
		return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
	}

	counterPayload, err := s.buildPayload(ctx, negotiation.Kind, payload.CounterPayload, payload.RawText)
	if err != nil {
		return fail(err.Error()), nil
	}
	if err := validateAgainstMatch(counterPayload, match); err != nil {
		return fail(err.Error()), nil
	}

	now := s.clock.Now().UTC()
	replacement := &negotiationtypes.Negotiation{
		ID:              uuid.New(),
		MatchID:         negotiation.MatchID,
		GuildID:         negotiation.GuildID,
		Kind:            negotiation.Kind,
		State:           negotiationtypes.StateOpen,
		ProposerTeamID:  negotiation.ResponderTeamID,
		ResponderTeamID: negotiation.ProposerTeamID,
		Payload:         counterPayload,
		ChannelID:       negotiation.ChannelID,
		CreatedAt:       now,
		ExpiresAt:       now.Add(s.ttl),
	}

	// Close the old offer before opening its replacement so the partial
	// unique index never sees two open rows.
	if err := s.repo.MarkSuperseded(ctx, negotiation.ID, replacement.ID, now); err != nil {
		if errors.Is(err, negotiationdb.ErrNotOpen) {
			return fail("offer is no longer open"), nil
		}
		return results.OperationResult{}, fmt.Errorf("failed to supersede offer: %w", err)
	}

	if err := s.repo.CreateOpen(ctx, replacement); err != nil {
		return results.OperationResult{}, fmt.Errorf("failed to open counter offer: %w", err)
	}

	if err := s.queue.CancelExpiry(ctx, negotiation.ID); err != nil {
		s.logger.WarnContext(ctx, "Failed to cancel expiry job after counter")
	}
	if err := s.queue.ScheduleExpiry(ctx, replacement.GuildID, replacement.ID, replacement.ExpiresAt); err != nil {
		return results.OperationResult{}, fmt.Errorf("failed to schedule expiry: %w", err)
	}

	superseded := *negotiation
	superseded.State = negotiationtypes.StateSuperseded
	superseded.SupersededBy = &replacement.ID
	superseded.ResolvedAt = &now

	return results.OperationResult{
		Success: &negotiationevents.NegotiationSupersededPayloadV1{
			Superseded:  superseded,
			Replacement: *replacement,
		},
	}, nil
}
