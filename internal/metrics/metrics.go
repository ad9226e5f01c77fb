// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every ballotsync metric. It is separate from the default
// registry so exports contain only run metrics, not Go runtime collectors.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Row outcomes.
const (
	OutcomeUpdated = "updated"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

var (
	// Row Metrics
	RowsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ballotsync_rows_total",
			Help: "Rows processed, by entity kind and outcome",
		},
		[]string{"entity", "outcome"}, // outcome: "updated", "failed", "skipped"
	)

	// Mutation Metrics
	MutationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ballotsync_mutation_duration_seconds",
			Help:    "Duration of GraphQL mutations in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	MutationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ballotsync_mutations_total",
			Help: "GraphQL mutations sent, by operation and result",
		},
		[]string{"operation", "result"}, // result: "success", "failure"
	)

	// Batch Metrics
	BatchDuration = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ballotsync_batch_duration_seconds",
			Help: "Wall time of the last batch in seconds",
		},
		[]string{"operation"},
	)

	LastSuccess = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ballotsync_last_success_timestamp",
			Help: "Unix time of the last batch that finished without row failures",
		},
		[]string{"operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ballotsync_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ballotsync_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ballotsync_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ballotsync_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordRow records the outcome of one row.
func RecordRow(entity, outcome string) {
	RowsTotal.WithLabelValues(entity, outcome).Inc()
}

// RecordMutation records a mutation metric
func RecordMutation(operation string, duration time.Duration, err error) {
	MutationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		MutationsTotal.WithLabelValues(operation, "failure").Inc()
		return
	}
	MutationsTotal.WithLabelValues(operation, "success").Inc()
}

// RecordBatch records a finished batch. The success timestamp only moves
// when no row failed.
func RecordBatch(operation string, duration time.Duration, hadFailures bool) {
	BatchDuration.WithLabelValues(operation).Set(duration.Seconds())
	if !hadFailures {
		LastSuccess.WithLabelValues(operation).Set(float64(time.Now().Unix()))
	}
}
