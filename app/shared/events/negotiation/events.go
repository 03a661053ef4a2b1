package negotiationevents

import (
	"encoding/json"
	"time"

	negotiationtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/negotiation"
	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/google/uuid"
)

// Topic constants for the negotiation module.
const (
	NegotiationProposeRequestedV1 = "negotiation.propose.requested.v1"
	NegotiationOpenedV1           = "negotiation.opened.v1"
	NegotiationProposeFailedV1    = "negotiation.propose.failed.v1"

	NegotiationRespondRequestedV1 = "negotiation.respond.requested.v1"
	NegotiationAcceptedV1         = "negotiation.accepted.v1"
	NegotiationSupersededV1       = "negotiation.superseded.v1"
	NegotiationRespondFailedV1    = "negotiation.respond.failed.v1"

	NegotiationExpireDueV1 = "negotiation.expire.due.v1"
	NegotiationExpiredV1   = "negotiation.expired.v1"

	NegotiationControlBindRequestedV1 = "negotiation.control.bind.requested.v1"
	NegotiationControlBoundV1         = "negotiation.control.bound.v1"
	NegotiationControlBindFailedV1    = "negotiation.control.bind.failed.v1"
)

// ResponseAction is what the responder chose to do with an open offer.
type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionCounter ResponseAction = "counter"
)

// NegotiationProposeRequestedPayloadV1 opens a new offer. The payload envelope
// carries the kind tag; RawText is the untouched user input for time offers so
// lenient parsing happens server side.
type NegotiationProposeRequestedPayloadV1 struct {
	GuildID     sharedtypes.GuildID      `json:"guild_id"`
	MatchID     sharedtypes.MatchID      `json:"match_id"`
	Kind        negotiationtypes.Kind    `json:"kind"`
	Payload     json.RawMessage          `json:"payload,omitempty"`
	RawText     string                   `json:"raw_text,omitempty"`
	ProposedBy  sharedtypes.UserID       `json:"proposed_by"`
	UserRoleIDs []sharedtypes.RoleID     `json:"user_role_ids"`
	ChannelID   sharedtypes.ChannelID    `json:"channel_id"`
}

type NegotiationOpenedPayloadV1 struct {
	Negotiation negotiationtypes.Negotiation `json:"negotiation"`
}

type NegotiationProposeFailedPayloadV1 struct {
	GuildID sharedtypes.GuildID   `json:"guild_id"`
	MatchID sharedtypes.MatchID   `json:"match_id"`
	Kind    negotiationtypes.Kind `json:"kind"`
	Reason  string                `json:"reason"`
}

// NegotiationRespondRequestedPayloadV1 accepts or counters an open offer.
// Counter payloads use the same tagged envelope as proposals.
type NegotiationRespondRequestedPayloadV1 struct {
	GuildID        sharedtypes.GuildID  `json:"guild_id"`
	NegotiationID  uuid.UUID            `json:"negotiation_id"`
	Action         ResponseAction       `json:"action"`
	CounterPayload json.RawMessage      `json:"counter_payload,omitempty"`
	RawText        string               `json:"raw_text,omitempty"`
	RespondedBy    sharedtypes.UserID   `json:"responded_by"`
	UserRoleIDs    []sharedtypes.RoleID `json:"user_role_ids"`
}

type NegotiationAcceptedPayloadV1 struct {
	Negotiation negotiationtypes.Negotiation `json:"negotiation"`
	AcceptedBy  sharedtypes.UserID           `json:"accepted_by"`
}

type NegotiationSupersededPayloadV1 struct {
	Superseded  negotiationtypes.Negotiation `json:"superseded"`
	Replacement negotiationtypes.Negotiation `json:"replacement"`
}

type NegotiationRespondFailedPayloadV1 struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	NegotiationID uuid.UUID           `json:"negotiation_id"`
	Reason        string              `json:"reason"`
}

// NegotiationExpireDuePayloadV1 fires when an offer's deadline passes. The
// queue publishes it; the handler decides whether the offer is still open.
type NegotiationExpireDuePayloadV1 struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	NegotiationID uuid.UUID           `json:"negotiation_id"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

// NegotiationExpiredPayloadV1 marks an offer that hit its deadline without a
// response. The propose control for this kind becomes usable again.
type NegotiationExpiredPayloadV1 struct {
	Negotiation negotiationtypes.Negotiation `json:"negotiation"`
	ExpiredAt   time.Time                    `json:"expired_at"`
}

// NegotiationControlBindRequestedPayloadV1 records where the gateway posted
// the offer message so later updates can address it.
type NegotiationControlBindRequestedPayloadV1 struct {
	GuildID       sharedtypes.GuildID   `json:"guild_id"`
	NegotiationID uuid.UUID             `json:"negotiation_id"`
	ChannelID     sharedtypes.ChannelID `json:"channel_id"`
	MessageID     sharedtypes.MessageID `json:"message_id"`
}

type NegotiationControlBoundPayloadV1 struct {
	Negotiation negotiationtypes.Negotiation `json:"negotiation"`
}

type NegotiationControlBindFailedPayloadV1 struct {
	GuildID       sharedtypes.GuildID `json:"guild_id"`
	NegotiationID uuid.UUID           `json:"negotiation_id"`
	Reason        string              `json:"reason"`
}
