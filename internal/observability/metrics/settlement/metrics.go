// Package settlementmetrics records operational metrics for the settlement module.
package settlementmetrics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// SettlementMetrics is the metrics surface the settlement service records against.
type SettlementMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationSuccess(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationFailure(ctx context.Context, operation string, roundID uuid.UUID)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordSettlementComputed(ctx context.Context, format string)
}

type prometheusMetrics struct {
	attempts    *prometheus.CounterVec
	successes   *prometheus.CounterVec
	failures    *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	settlements *prometheus.CounterVec
}

// NewPrometheusMetrics registers and returns settlement metrics on the given registry.
func NewPrometheusMetrics(registry prometheus.Registerer) SettlementMetrics {
	m := &prometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_operation_attempts_total",
			Help: "Number of settlement operations attempted.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_operation_successes_total",
			Help: "Number of settlement operations that succeeded.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlement_operation_failures_total",
			Help: "Number of settlement operations that failed.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "settlement_operation_duration_seconds",
			Help:    "Duration of settlement operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "settlements_computed_total",
			Help: "Number of settlements computed, by game format.",
		}, []string{"format"}),
	}
	registry.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.settlements)
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

func (m *prometheusMetrics) RecordSettlementComputed(_ context.Context, format string) {
	m.settlements.WithLabelValues(format).Inc()
}

// NoOpMetrics discards every measurement. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string, uuid.UUID) {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordSettlementComputed(context.Context, string) {}
