package observability

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/The-Bracket-Club/tourney-bot/app/shared/observability/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config holds observability settings.
type Config struct {
	ServiceName    string
	Environment    string
	MetricsAddress string
}

// Provider carries the process-wide logger and tracer provider.
type Provider struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
}

// Registry exposes the per-module observability handles modules wire into
// their services.
type Registry struct {
	Prometheus *prometheus.Registry
	Tracer     trace.Tracer

	TeamMetrics        metrics.OperationMetrics
	MatchMetrics       metrics.OperationMetrics
	NegotiationMetrics metrics.OperationMetrics
	UIControlMetrics   metrics.OperationMetrics
	StreamerMetrics    metrics.OperationMetrics
	QueueMetrics       metrics.OperationMetrics
	RestorationMetrics metrics.RestorationMetrics
}

// Observability is the assembled observability stack.
type Observability struct {
	Provider Provider
	Registry *Registry
}

// Init builds the logger, metric vectors, and tracer for the process. Trace
// export is owned by whatever SDK the deployment installs on the global
// provider; this package only consumes the API.
func Init(ctx context.Context, cfg Config) (*Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
	)

	promRegistry := prometheus.NewRegistry()
	metricsRegistry := metrics.NewRegistry(promRegistry)

	tracerProvider := otel.GetTracerProvider()
	tracer := tracerProvider.Tracer(cfg.ServiceName)

	return &Observability{
		Provider: Provider{
			Logger:         logger,
			TracerProvider: tracerProvider,
		},
		Registry: &Registry{
			Prometheus:         promRegistry,
			Tracer:             tracer,
			TeamMetrics:        metricsRegistry.ForModule("team"),
			MatchMetrics:       metricsRegistry.ForModule("match"),
			NegotiationMetrics: metricsRegistry.ForModule("negotiation"),
			UIControlMetrics:   metricsRegistry.ForModule("uicontrol"),
			StreamerMetrics:    metricsRegistry.ForModule("streamer"),
			QueueMetrics:       metricsRegistry.ForModule("queue"),
			RestorationMetrics: metricsRegistry.Restoration(),
		},
	}, nil
}

// NoOpLogger discards everything; used in tests.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
