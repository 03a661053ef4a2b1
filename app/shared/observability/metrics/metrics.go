package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records service operation throughput for one module.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

// RestorationMetrics records startup restoration outcomes per control kind.
type RestorationMetrics interface {
	RecordRestored(ctx context.Context, kind string)
	RecordRestoreFailed(ctx context.Context, kind string)
	RecordPurged(ctx context.Context, count int)
}

// NoOpMetrics satisfies both metric interfaces and records nothing.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(ctx context.Context, operation, service string) {}
func (NoOpMetrics) RecordOperationSuccess(ctx context.Context, operation, service string) {}
func (NoOpMetrics) RecordOperationFailure(ctx context.Context, operation, service string) {}
func (NoOpMetrics) RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration) {
}
func (NoOpMetrics) RecordRestored(ctx context.Context, kind string)      {}
func (NoOpMetrics) RecordRestoreFailed(ctx context.Context, kind string) {}
func (NoOpMetrics) RecordPurged(ctx context.Context, count int)          {}

// Registry owns the prometheus vectors shared by all modules. Each module gets
// a view with its module label pre-bound.
type Registry struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec

	restored      *prometheus.CounterVec
	restoreFailed *prometheus.CounterVec
	purged        prometheus.Counter
}

// NewRegistry creates and registers the metric vectors on reg.
func NewRegistry(reg *prometheus.Registry) *Registry {
	r := &Registry{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_operation_attempts_total",
			Help: "Service operation attempts.",
		}, []string{"module", "operation", "service"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_operation_successes_total",
			Help: "Service operations that completed without error.",
		}, []string{"module", "operation", "service"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_operation_failures_total",
			Help: "Service operations that returned an error.",
		}, []string{"module", "operation", "service"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tourney_operation_duration_seconds",
			Help:    "Service operation durations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"module", "operation", "service"}),
		restored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_controls_restored_total",
			Help: "UI controls restored at startup, by kind.",
		}, []string{"kind"}),
		restoreFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tourney_controls_restore_failed_total",
			Help: "UI controls that failed restoration, by kind.",
		}, []string{"kind"}),
		purged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tourney_controls_purged_total",
			Help: "Stale UI control records purged at startup.",
		}),
	}

	reg.MustRegister(r.attempts, r.successes, r.failures, r.durations, r.restored, r.restoreFailed, r.purged)
	return r
}

// ForModule returns an OperationMetrics bound to the given module label.
func (r *Registry) ForModule(module string) OperationMetrics {
	return &moduleMetrics{registry: r, module: module}
}

// Restoration returns the restoration metrics view.
func (r *Registry) Restoration() RestorationMetrics {
	return &restorationMetrics{registry: r}
}

type moduleMetrics struct {
	registry *Registry
	module   string
}

func (m *moduleMetrics) RecordOperationAttempt(ctx context.Context, operation, service string) {
	m.registry.attempts.WithLabelValues(m.module, operation, service).Inc()
}

func (m *moduleMetrics) RecordOperationSuccess(ctx context.Context, operation, service string) {
	m.registry.successes.WithLabelValues(m.module, operation, service).Inc()
}

func (m *moduleMetrics) RecordOperationFailure(ctx context.Context, operation, service string) {
	m.registry.failures.WithLabelValues(m.module, operation, service).Inc()
}

func (m *moduleMetrics) RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration) {
	m.registry.durations.WithLabelValues(m.module, operation, service).Observe(duration.Seconds())
}

type restorationMetrics struct {
	registry *Registry
}

func (m *restorationMetrics) RecordRestored(ctx context.Context, kind string) {
	m.registry.restored.WithLabelValues(kind).Inc()
}

func (m *restorationMetrics) RecordRestoreFailed(ctx context.Context, kind string) {
	m.registry.restoreFailed.WithLabelValues(kind).Inc()
}

func (m *restorationMetrics) RecordPurged(ctx context.Context, count int) {
	m.registry.purged.Add(float64(count))
}
