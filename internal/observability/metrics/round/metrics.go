// Package roundmetrics records operational metrics for the round module.
package roundmetrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// RoundMetrics is the metrics surface the round service records against.
type RoundMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationSuccess(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationFailure(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordDBQueryDuration(ctx context.Context, duration time.Duration)
}

type prometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	dbQueries prometheus.Histogram
}

// NewPrometheusMetrics registers and returns round metrics on the given registry.
func NewPrometheusMetrics(registry prometheus.Registerer) RoundMetrics {
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "round_operation_attempts_total",
			Help: "Number of round operations attempted.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "round_operation_successes_total",
			Help: "Number of round operations that succeeded.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "round_operation_failures_total",
			Help: "Number of round operations that failed.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "round_operation_duration_seconds",
			Help:    "Duration of round operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		dbQueries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "round_db_query_duration_seconds",
			Help:    "Duration of round repository queries.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	registry.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.dbQueries)
	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string, _ uuid.UUID) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string, _ uuid.UUID) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string, _ uuid.UUID) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordDBQueryDuration(_ context.Context, duration time.Duration) {
	m.dbQueries.Observe(duration.Seconds())
}

// NoOpMetrics discards every measurement. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordDBQueryDuration(context.Context, time.Duration) {}
