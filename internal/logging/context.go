// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Context keys for logging.
type contextKey string

const (
	// runIDKey is the context key for the id of one sync invocation.
	runIDKey contextKey = "run_id"

	// loggerKey is the context key for storing a logger instance.
	loggerKey contextKey = "logger"
)

// GenerateRunID creates a new unique run ID.
// Returns the first 8 characters of a UUID for readability.
func GenerateRunID() string {
	return uuid.New().String()[:8]
}

// ContextWithRunID returns a new context with the given run ID.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext retrieves the run ID from context.
// Returns empty string if not present.
func RunIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// ContextWithLogger stores a logger in the context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Ctx returns the context logger with run_id added when present. Without a
// stored logger it returns a disabled logger.
//
//	logging.Ctx(ctx).Info().Int("candidate_id", id).Msg("Candidate updated")
//	// Output: {"level":"info","run_id":"abc12345","candidate_id":7,"message":"Candidate updated"}
func Ctx(ctx context.Context) *zerolog.Logger {
	return CtxOr(ctx, zerolog.Nop())
}

// CtxOr is Ctx with fallback used when ctx stores no logger. The fallback
// must not already carry a run_id field.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func CtxOr(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	logger := fallback
	if stored, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
		logger = stored
	}
	if runID := RunIDFromContext(ctx); runID != "" {
		logger = logger.With().Str("run_id", runID).Logger()
	}
	return &logger
}

// WithComponent derives a child logger tagged with a component field.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
