package eventbus

import (
	"context"
	"fmt"
)

// streamDefinitions maps each JetStream stream to the subjects it owns. One
// stream per module plus the outbound discord command stream the gateway
// consumes.
var streamDefinitions = map[string][]string{
	"team":        {"team.>"},
	"match":       {"match.>"},
	"negotiation": {"negotiation.>"},
	"uicontrol":   {"uicontrol.>"},
	"streamer":    {"streamer.>"},
	"discord":     {"discord.>"},
}

// InitializeStreams creates every stream the application publishes to.
// Called once during startup, before the router begins consuming.
func InitializeStreams(ctx context.Context, bus EventBus) error {
	for name, subjects := range streamDefinitions {
		if err := bus.CreateStream(ctx, name, subjects...); err != nil {
			return fmt.Errorf("failed to initialize stream %s: %w", name, err)
		}
	}
	return nil
}
