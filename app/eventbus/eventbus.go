package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// EventBus is the message transport shared by all modules. It satisfies both
// watermill interfaces so module routers can use it as publisher and
// subscriber directly.
type EventBus interface {
	message.Publisher
	message.Subscriber
	CreateStream(ctx context.Context, streamName string, subjects ...string) error
	Close() error
}

type eventBus struct {
	publisher      message.Publisher
	subscriber     message.Subscriber
	js             jetstream.JetStream
	natsConn       *nc.Conn
	logger         *slog.Logger
	createdStreams map[string]bool
	streamMutex    sync.Mutex
}

// NewEventBus connects to NATS JetStream and builds the watermill
// publisher/subscriber pair around the connection.
func NewEventBus(ctx context.Context, natsURL string, logger *slog.Logger) (EventBus, error) {
	natsConn, err := nc.Connect(natsURL, nc.RetryOnFailedConnect(true))
	if err != nil {
		logger.Error("Failed to connect to NATS", attr.Error(err))
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(natsConn)
	if err != nil {
		natsConn.Close()
		logger.Error("Failed to initialize JetStream", attr.Error(err))
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	watermillLogger := watermill.NewSlogLogger(logger)
	marshaller := &wmnats.NATSMarshaler{}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       natsURL,
			Marshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		logger.Error("Failed to create watermill publisher", attr.Error(err))
		return nil, fmt.Errorf("failed to create watermill publisher: %w", err)
	}

	subscriber, err := wmnats.NewSubscriber(
		wmnats.SubscriberConfig{
			URL:         natsURL,
			Unmarshaler: marshaller,
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
			},
		},
		watermillLogger,
	)
	if err != nil {
		natsConn.Close()
		publisher.Close()
		logger.Error("Failed to create watermill subscriber", attr.Error(err))
		return nil, fmt.Errorf("failed to create watermill subscriber: %w", err)
	}

	return &eventBus{
		publisher:      publisher,
		subscriber:     subscriber,
		js:             js,
		natsConn:       natsConn,
		logger:         logger,
		createdStreams: make(map[string]bool),
	}, nil
}

// Publish sends messages to the given topic. An empty topic falls back to the
// "topic" metadata key, which is how transformation handlers route each
// produced message independently.
func (eb *eventBus) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if msg.UUID == "" {
			msg.UUID = watermill.NewUUID()
		}

		resolved := topic
		if resolved == "" {
			resolved = msg.Metadata.Get("topic")
		}
		if resolved == "" {
			return errors.New("message has no topic: publish topic empty and no topic metadata set")
		}

		eb.logger.Debug("Publishing message",
			attr.String("topic", resolved),
			attr.String("message_uuid", msg.UUID),
		)

		if err := eb.publisher.Publish(resolved, msg); err != nil {
			eb.logger.Error("Failed to publish message",
				attr.String("topic", resolved),
				attr.Error(err),
			)
			return fmt.Errorf("failed to publish to %s: %w", resolved, err)
		}
	}
	return nil
}

// Subscribe returns the message channel for a topic.
func (eb *eventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	eb.logger.Info("Subscribing to topic", attr.String("topic", topic))
	messages, err := eb.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return messages, nil
}

// CreateStream ensures a JetStream stream exists and covers the given
// subjects, updating the subject set when the stream already exists.
func (eb *eventBus) CreateStream(ctx context.Context, streamName string, subjects ...string) error {
	eb.streamMutex.Lock()
	defer eb.streamMutex.Unlock()

	if eb.createdStreams[streamName] {
		return nil
	}

	stream, err := eb.js.Stream(ctx, streamName)
	if err != nil && !errors.Is(err, jetstream.ErrStreamNotFound) {
		return fmt.Errorf("failed to check stream %s: %w", streamName, err)
	}

	if errors.Is(err, jetstream.ErrStreamNotFound) {
		_, err = eb.js.CreateStream(ctx, jetstream.StreamConfig{
			Name:     streamName,
			Subjects: subjects,
		})
		if err != nil {
			return fmt.Errorf("failed to create stream %s: %w", streamName, err)
		}
		eb.logger.Info("Stream created",
			attr.String("stream", streamName),
			attr.Any("subjects", subjects),
		)
	} else {
		info, err := stream.Info(ctx)
		if err != nil {
			return fmt.Errorf("failed to get stream info for %s: %w", streamName, err)
		}
		existing := make(map[string]bool, len(info.Config.Subjects))
		for _, s := range info.Config.Subjects {
			existing[s] = true
		}
		changed := false
		for _, s := range subjects {
			if !existing[s] {
				info.Config.Subjects = append(info.Config.Subjects, s)
				changed = true
			}
		}
		if changed {
			if _, err := eb.js.UpdateStream(ctx, info.Config); err != nil {
				return fmt.Errorf("failed to update stream %s: %w", streamName, err)
			}
			eb.logger.Info("Stream updated with new subjects", attr.String("stream", streamName))
		}
	}

	eb.createdStreams[streamName] = true
	return nil
}

// Close shuts down the publisher, subscriber and NATS connection.
func (eb *eventBus) Close() error {
	if eb.publisher != nil {
		if err := eb.publisher.Close(); err != nil {
			eb.logger.Error("Error closing publisher", attr.Error(err))
		}
	}
	if eb.subscriber != nil {
		if err := eb.subscriber.Close(); err != nil {
			eb.logger.Error("Error closing subscriber", attr.Error(err))
		}
	}
	if eb.natsConn != nil {
		eb.natsConn.Close()
	}
	return nil
}
