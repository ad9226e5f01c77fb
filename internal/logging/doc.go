// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package logging builds the zerolog logger used by every ballotsync component.
//
// There is no package-level logger. main builds one with New and hands it to
// components at construction time or stores it in the run context:
//
//	logger := logging.New(logging.Config{Level: "info", Format: "console"})
//	ctx = logging.ContextWithLogger(ctx, logger)
//	ctx = logging.ContextWithRunID(ctx, logging.GenerateRunID())
//	logging.Ctx(ctx).Info().Msg("Sync started")
//
// # Configuration
//
// Environment variables (through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller info (default: false)
//   - LOG_FILE: also write JSON lines to a rotated file
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Ctx(ctx).Info().Str("key", "value").Msg("message")  // Correct
//	logging.Ctx(ctx).Info().Str("key", "value")                 // WRONG - log not emitted
package logging
