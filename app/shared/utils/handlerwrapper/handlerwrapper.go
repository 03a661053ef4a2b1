package handlerwrapper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/attr"
	"github.com/The-Bracket-Club/tourney-bot/app/shared/utils"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Result is one outgoing message produced by a typed handler.
type Result struct {
	Topic    string
	Payload  any
	Metadata map[string]string
}

// ReturningMetrics records per-handler throughput.
type ReturningMetrics interface {
	RecordHandlerAttempt(ctx context.Context, handlerName string)
	RecordHandlerSuccess(ctx context.Context, handlerName string)
	RecordHandlerFailure(ctx context.Context, handlerName string)
	RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration)
}

// NoOpMetrics discards all handler metrics.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordHandlerAttempt(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerSuccess(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerFailure(ctx context.Context, handlerName string) {}
func (NoOpMetrics) RecordHandlerDuration(ctx context.Context, handlerName string, duration time.Duration) {
}

// WrapTransformingTyped adapts a typed transformation handler into a Watermill
// HandlerFunc. The handler receives the decoded payload and returns the
// messages to publish; it never touches the wire format.
func WrapTransformingTyped[T any](
	handlerName string,
	logger *slog.Logger,
	tracer trace.Tracer,
	helpers utils.Helpers,
	metrics ReturningMetrics,
	handler func(ctx context.Context, payload *T) ([]Result, error),
) message.HandlerFunc {
	if metrics == nil {
		metrics = NoOpMetrics{}
	}
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()
		ctx = attr.WithCorrelationID(ctx, middleware.MessageCorrelationID(msg))

		ctx, span := tracer.Start(ctx, handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
			attribute.String("message_uuid", msg.UUID),
		))
		defer span.End()

		metrics.RecordHandlerAttempt(ctx, handlerName)
		start := time.Now()
		defer func() {
			metrics.RecordHandlerDuration(ctx, handlerName, time.Since(start))
		}()

		payload := new(T)
		if err := helpers.UnmarshalPayload(msg, payload); err != nil {
			logger.ErrorContext(ctx, "Failed to unmarshal handler payload",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(ctx, handlerName)
			span.RecordError(err)
			// Malformed payloads are not retryable; ack and drop.
			return nil, nil
		}

		handlerResults, err := handler(ctx, payload)
		if err != nil {
			logger.ErrorContext(ctx, "Handler returned error",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, fmt.Errorf("%s: %w", handlerName, err)
		}

		out := make([]*message.Message, 0, len(handlerResults))
		for _, hr := range handlerResults {
			resultMsg, err := helpers.CreateResultMessage(msg, hr.Payload, hr.Topic)
			if err != nil {
				metrics.RecordHandlerFailure(ctx, handlerName)
				span.RecordError(err)
				return nil, fmt.Errorf("%s: failed to create result message: %w", handlerName, err)
			}
			for k, v := range hr.Metadata {
				resultMsg.Metadata.Set(k, v)
			}
			out = append(out, resultMsg)
		}

		metrics.RecordHandlerSuccess(ctx, handlerName)
		return out, nil
	}
}
