// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package graphql

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/ballotsync/internal/config"
	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/logging"
	"github.com/tomtom215/ballotsync/internal/metrics"
)

// breakerName labels breaker metrics and logs.
const breakerName = "graphql-mutations"

// BreakerMutator wraps a Mutator with a circuit breaker. After MaxFailures
// consecutive failures the breaker opens and mutations fail immediately until
// Timeout has elapsed; then a single probe mutation is let through.
//
// The breaker uses real time (via sony/gobreaker) for its timeout. Tests
// should use short timeouts rather than mocking the clock.
type BreakerMutator struct {
	next   Mutator
	cb     *gobreaker.CircuitBreaker[int]
	logger zerolog.Logger
}

// NewBreakerMutator wraps next.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerMutator(next Mutator, cfg config.BreakerConfig, logger zerolog.Logger) *BreakerMutator {
	logger = logging.WithComponent(logger, "breaker")

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	maxFailures := cfg.MaxFailures
	cb := gobreaker.NewCircuitBreaker[int](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			shouldTrip := counts.ConsecutiveFailures >= maxFailures
			if shouldTrip {
				logger.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerMutator{next: next, cb: cb, logger: logger}
}

// Mutate forwards to the wrapped Mutator unless the breaker is open.
func (b *BreakerMutator) Mutate(ctx context.Context, op Operation, variables any) (int, error) {
	count, err := b.cb.Execute(func() (int, error) {
		return b.next.Mutate(ctx, op, variables)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "rejected").Inc()
			b.logger.Warn().Str("operation", op.Name).Msg("[CIRCUIT BREAKER] Mutation rejected")
			return 0, apperrors.NewMutationError(op.Name, 0, "", err)
		}

		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "failure").Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(float64(counts.ConsecutiveFailures))
		return 0, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)
	return count, nil
}

// State returns the current breaker state.
func (b *BreakerMutator) State() gobreaker.State {
	return b.cb.State()
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
