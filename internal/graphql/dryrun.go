// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package graphql

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ballotsync/internal/config"
	"github.com/tomtom215/ballotsync/internal/logging"
)

// DryRunMutator logs each mutation instead of sending it and reports one
// affected row.
type DryRunMutator struct {
	logger zerolog.Logger
}

// NewDryRunMutator creates a DryRunMutator.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewDryRunMutator(logger zerolog.Logger) *DryRunMutator {
	return &DryRunMutator{logger: logging.WithComponent(logger, "dry-run")}
}

// Mutate logs op and variables.
func (d *DryRunMutator) Mutate(_ context.Context, op Operation, variables any) (int, error) {
	payload, err := json.Marshal(variables)
	if err != nil {
		payload = []byte(`"(unencodable variables)"`)
	}
	d.logger.Info().
		Str("operation", op.Name).
		RawJSON("variables", payload).
		Msg("dry run: mutation not sent")
	return 1, nil
}

// NewMutator builds the Mutator for a run: the HTTP client, wrapped in a
// breaker when enabled, or a DryRunMutator when dryRun is set.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewMutator(cfg config.DestinationConfig, dryRun bool, logger zerolog.Logger) Mutator {
	if dryRun {
		return NewDryRunMutator(logger)
	}

	var m Mutator = NewClient(cfg, logger)
	if cfg.Breaker.Enabled {
		m = NewBreakerMutator(m, cfg.Breaker, logger)
	}
	return m
}
