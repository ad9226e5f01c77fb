// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// ExportConfig names the export targets. Empty fields are skipped.
type ExportConfig struct {
	Textfile string
	PushURL  string
	Job      string
	RunID    string
}

// Export writes the registry to the configured targets. Both targets are
// attempted; their errors are joined.
func Export(ctx context.Context, cfg ExportConfig) error {
	return exportFrom(ctx, Registry, cfg)
}

func exportFrom(ctx context.Context, g prometheus.Gatherer, cfg ExportConfig) error {
	var errs []error

	if cfg.Textfile != "" {
		if err := prometheus.WriteToTextfile(cfg.Textfile, g); err != nil {
			errs = append(errs, fmt.Errorf("write textfile %s: %w", cfg.Textfile, err))
		}
	}

	if cfg.PushURL != "" {
		pusher := push.New(cfg.PushURL, cfg.Job).Gatherer(g)
		if cfg.RunID != "" {
			pusher = pusher.Grouping("run_id", cfg.RunID)
		}
		if err := pusher.PushContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("push to %s: %w", cfg.PushURL, err))
		}
	}

	return errors.Join(errs...)
}
