package negotiationservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	matchdb "github.com/The-Bracket-Club/tourney-bot/app/modules/match/infrastructure/repositories"
	negotiationdb "github.com/The-Bracket-Club/tourney-bot/app/modules/negotiation/infrastructure/repositories"
	negotiationevents "github.com/The-Bracket-Club/tourney-bot/app/shared/events/negotiation"
	matchtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/match"
	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils/results"
)

// Propose opens a new offer for one negotiable aspect of a match. At most one
// open offer per (match, kind) can exist; the database enforces it, so two
// simultaneous proposals race to a single winner.
func (s *NegotiationService) Propose(ctx context.Context, payload *negotiationevents.NegotiationProposeRequestedPayloadV1) (results.OperationResult, error) {
	return s.withTelemetry(ctx, "ProposeNegotiation", func(ctx context.Context) (results.OperationResult, error) {
		fail := func(reason string) results.OperationResult {
			return results.OperationResult{
				Failure: &negotiationevents.NegotiationProposeFailedPayloadV1{
					GuildID: payload.GuildID,
					MatchID: payload.MatchID,
					Kind:    payload.Kind,
					Reason:  reason,
				},
			}
		}

		if !payload.Kind.Valid() {
			return fail(fmt.Sprintf("unknown negotiation kind %q", payload.Kind)), nil
		}

		match, err := s.matches.GetMatch(ctx, payload.MatchID)
		if err != nil {
			if errors.Is(err, matchdb.ErrNotFound) {
				return fail("match not found"), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to load match: %w", err)
		}
		if match.Status == matchtypes.StatusConfirmed {
			return fail("match is already finalized"), nil
		}

		membership, err := s.teams.ResolveMembership(ctx, match.Team1ID, match.Team2ID, payload.UserRoleIDs)
		if err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to resolve team membership: %w", err)
		}
		if membership == nil {
			return fail("you are not on either team of this match"), nil
		}

		offerPayload, err := s.buildPayload(ctx, payload.Kind, payload.Payload, payload.RawText)
		if err != nil {
			return fail(err.Error()), nil
		}
		if err := validateAgainstMatch(offerPayload, match); err != nil {
			return fail(err.Error()), nil
		}

		responderTeamID := match.Team1ID
		if membership.Team.ID == match.Team1ID {
			responderTeamID = match.Team2ID
		}

		now := s.clock.Now().UTC()
		negotiation := &negotiationtypes.Negotiation{
			ID:              uuid.New(),
			MatchID:         match.ID,
			GuildID:         payload.GuildID,
			Kind:            payload.Kind,
			State:           negotiationtypes.StateOpen,
			ProposerTeamID:  membership.Team.ID,
			ResponderTeamID: responderTeamID,
			Payload:         offerPayload,
			ChannelID:       payload.ChannelID,
			CreatedAt:       now,
			ExpiresAt:       now.Add(s.ttl),
		}

		if err := s.repo.CreateOpen(ctx, negotiation); err != nil {
			if errors.Is(err, negotiationdb.ErrDuplicateOpen) {
				return fail(fmt.Sprintf("an open %s offer already exists for this match", payload.Kind)), nil
			}
			return results.OperationResult{}, fmt.Errorf("failed to create negotiation: %w", err)
		}

		if err := s.queue.ScheduleExpiry(ctx, payload.GuildID, negotiation.ID, negotiation.ExpiresAt); err != nil {
			return results.OperationResult{}, fmt.Errorf("failed to schedule expiry: %w", err)
		}

		return results.OperationResult{
			Success: &negotiationevents.NegotiationOpenedPayloadV1{Negotiation: *negotiation},
		}, nil
	})
}
