package negotiationtypes

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sharedtypes "github.com/The-Bracket-Club/tourney-bot/app/shared/types/shared"
	"github.com/google/uuid"
)

// Kind is the negotiable aspect of a match.
type Kind string

const (
	KindTime   Kind = "time"
	KindServer Kind = "server"
	KindResult Kind = "result"
)

// Valid reports whether k is a known negotiation kind.
func (k Kind) Valid() bool {
	switch k {
	case KindTime, KindServer, KindResult:
		return true
	}
	return false
}

// State is the lifecycle state of a negotiation. Accepted, superseded and
// expired are terminal.
type State string

const (
	StateOpen       State = "open"
	StateAccepted   State = "accepted"
	StateSuperseded State = "superseded"
	StateExpired    State = "expired"
)

// Terminal reports whether the state admits no further transitions.
func (s State) Terminal() bool {
	return s == StateAccepted || s == StateSuperseded || s == StateExpired
}

// Payload is the kind-specific content of an offer.
type Payload interface {
	NegotiationKind() Kind
	Validate() error
}

// TimePayload proposes a match time.
type TimePayload struct {
	ProposedTime time.Time `json:"proposed_time"`
	Raw          string    `json:"raw,omitempty"`
}

func (TimePayload) NegotiationKind() Kind { return KindTime }

func (p TimePayload) Validate() error {
	if p.ProposedTime.IsZero() {
		return errors.New("proposed time is required")
	}
	return nil
}

// ServerPayload proposes game server connection details.
type ServerPayload struct {
	Host     string `json:"host"`
	Password string `json:"password,omitempty"`
	Region   string `json:"region,omitempty"`
}

func (ServerPayload) NegotiationKind() Kind { return KindServer }

func (p ServerPayload) Validate() error {
	if p.Host == "" {
		return errors.New("server host is required")
	}
	return nil
}

// ResultPayload proposes a match outcome.
type ResultPayload struct {
	WinnerTeamID sharedtypes.TeamID `json:"winner_team_id"`
	Score        string             `json:"score"`
}

func (ResultPayload) NegotiationKind() Kind { return KindResult }

func (p ResultPayload) Validate() error {
	if p.WinnerTeamID == 0 {
		return errors.New("winner team is required")
	}
	if p.Score == "" {
		return errors.New("score is required")
	}
	return nil
}

// payloadFactories maps each kind to a constructor for its payload type.
// Decoding dispatches through this table rather than switching on strings at
// every call site.
var payloadFactories = map[Kind]func() Payload{
	KindTime:   func() Payload { return &TimePayload{} },
	KindServer: func() Payload { return &ServerPayload{} },
	KindResult: func() Payload { return &ResultPayload{} },
}

type payloadEnvelope struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// EncodePayload wraps a payload in a tagged envelope for storage and transport.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, errors.New("payload is nil")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return json.Marshal(payloadEnvelope{Kind: p.NegotiationKind(), Data: data})
}

// DecodePayload reverses EncodePayload. Unknown kinds are an error, never a
// silent fallback.
func DecodePayload(raw []byte) (Payload, error) {
	var env payloadEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload envelope: %w", err)
	}
	factory, ok := payloadFactories[env.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown negotiation kind %q", env.Kind)
	}
	p := factory()
	if err := json.Unmarshal(env.Data, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s payload: %w", env.Kind, err)
	}
	return p, nil
}

// Negotiation is one offer in the propose/accept/counter protocol. A counter
// supersedes the open offer and opens a new one with the roles swapped; the
// superseded record keeps a reference to its replacement by ID only.
type Negotiation struct {
	ID              uuid.UUID             `json:"id"`
	MatchID         sharedtypes.MatchID   `json:"match_id"`
	GuildID         sharedtypes.GuildID   `json:"guild_id"`
	Kind            Kind                  `json:"kind"`
	State           State                 `json:"state"`
	ProposerTeamID  sharedtypes.TeamID    `json:"proposer_team_id"`
	ResponderTeamID sharedtypes.TeamID    `json:"responder_team_id"`
	Payload         Payload               `json:"payload"`
	ChannelID       sharedtypes.ChannelID `json:"channel_id"`
	MessageID       sharedtypes.MessageID `json:"message_id"`
	SupersededBy    *uuid.UUID            `json:"superseded_by,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	ExpiresAt       time.Time             `json:"expires_at"`
	ResolvedAt      *time.Time            `json:"resolved_at,omitempty"`
}

// UnmarshalJSON decodes the payload into its concrete type, dispatching on
// the negotiation's kind.
func (n *Negotiation) UnmarshalJSON(data []byte) error {
	type alias Negotiation
	aux := struct {
		*alias
		Payload json.RawMessage `json:"payload"`
	}{alias: (*alias)(n)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Payload) == 0 || string(aux.Payload) == "null" {
		return nil
	}
	factory, ok := payloadFactories[n.Kind]
	if !ok {
		return fmt.Errorf("unknown negotiation kind %q", n.Kind)
	}
	p := factory()
	if err := json.Unmarshal(aux.Payload, p); err != nil {
		return fmt.Errorf("failed to unmarshal %s payload: %w", n.Kind, err)
	}
	n.Payload = p
	return nil
}
