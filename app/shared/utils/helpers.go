package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Helpers bundles the message plumbing every handler needs.
type Helpers interface {
	UnmarshalPayload(msg *message.Message, out any) error
	CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error)
}

type helpersImpl struct {
	logger *slog.Logger
}

// NewHelpers returns the default Helpers implementation.
func NewHelpers(logger *slog.Logger) Helpers {
	return &helpersImpl{logger: logger}
}

// UnmarshalPayload decodes a message payload into out.
func (h *helpersImpl) UnmarshalPayload(msg *message.Message, out any) error {
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal payload for message %s: %w", msg.UUID, err)
	}
	return nil
}

// CreateResultMessage builds an outgoing message carrying the payload, with
// the destination topic in metadata and the correlation ID propagated from
// the original message.
func (h *helpersImpl) CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	if original != nil {
		middleware.SetCorrelationID(middleware.MessageCorrelationID(original), msg)
		if guildID := original.Metadata.Get("guild_id"); guildID != "" {
			msg.Metadata.Set("guild_id", guildID)
		}
	}
	return msg, nil
}
