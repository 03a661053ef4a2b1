package utils

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
)

// MiddlewareHelper builds the metadata middlewares shared by all module routers.
type MiddlewareHelper struct{}

// NewMiddlewareHelper creates a MiddlewareHelper.
func NewMiddlewareHelper() *MiddlewareHelper {
	return &MiddlewareHelper{}
}

// CommonMetadataMiddleware stamps every handled message with the owning module.
func (m *MiddlewareHelper) CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msg.Metadata.Set("handled_by", module)
			return h(msg)
		}
	}
}

// GuildMetadataMiddleware lifts the guild ID out of the payload into metadata
// so downstream consumers can route without decoding the body.
func (m *MiddlewareHelper) GuildMetadataMiddleware() message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			if msg.Metadata.Get("guild_id") == "" {
				var probe struct {
					GuildID string `json:"guild_id"`
				}
				if err := json.Unmarshal(msg.Payload, &probe); err == nil && probe.GuildID != "" {
					msg.Metadata.Set("guild_id", probe.GuildID)
				}
			}
			return h(msg)
		}
	}
}

// RoutingMetadataMiddleware makes sure produced messages carry their topic in
// metadata. The publisher reads it when the handler's publish topic is empty.
func (m *MiddlewareHelper) RoutingMetadataMiddleware() message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			produced, err := h(msg)
			if err != nil {
				return nil, err
			}
			for _, out := range produced {
				if out.Metadata.Get("topic") == "" {
					out.Metadata.Set("topic", msg.Metadata.Get("topic"))
				}
			}
			return produced, nil
		}
	}
}
