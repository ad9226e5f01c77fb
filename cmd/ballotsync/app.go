// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/ballotsync/internal/config"
	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/graphql"
	"github.com/tomtom215/ballotsync/internal/logging"
	"github.com/tomtom215/ballotsync/internal/metrics"
	"github.com/tomtom215/ballotsync/internal/source"
	syncpkg "github.com/tomtom215/ballotsync/internal/sync"
)

// Exit codes.
const (
	exitOK       = 0
	exitInvalid  = 1
	exitFailures = 2
)

// exitError carries the process exit code for an error that has already
// been reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// batchFunc runs one batch, for example (*sync.Syncer).SyncCandidates.
type batchFunc func(s *syncpkg.Syncer, ctx context.Context, fromID, toID int) (*syncpkg.Report, error)

// batchSource is a sync.Source that holds resources until closed.
type batchSource interface {
	syncpkg.Source
	Close() error
}

// app holds the dependencies of one command invocation. Tests replace the
// constructors to run batches without a spreadsheet or backend.
type app struct {
	stdout io.Writer
	stderr io.Writer

	loadConfig func() (*config.Config, error)
	openSource func(ctx context.Context, cfg config.SourceConfig) (batchSource, error)
	newMutator func(cfg config.DestinationConfig, dryRun bool, logger zerolog.Logger) graphql.Mutator
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		openSource: func(ctx context.Context, cfg config.SourceConfig) (batchSource, error) {
			return source.Open(ctx, cfg)
		},
		newMutator: graphql.NewMutator,
	}
}

// execute runs the command line and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if apperrors.As(err, &ee) {
		return ee.code
	}

	// Cobra argument and flag errors.
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return exitInvalid
}

// runBatch wires configuration, logging, source and mutator for one batch.
//
//nolint:gocyclo // Sequential setup steps
func (a *app) runBatch(ctx context.Context, operation string, run batchFunc, fromID, toID int) error {
	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return &exitError{code: exitInvalid, err: err}
	}

	lc := cfg.LoggerConfig()
	lc.Output = a.stderr
	runID := logging.GenerateRunID()

	base := logging.New(lc)

	ctx = logging.ContextWithRunID(ctx, runID)
	ctx = logging.ContextWithLogger(ctx, base)
	logger := *logging.Ctx(ctx)

	logger.Info().
		Str("operation", operation).
		Int("from_id", fromID).
		Int("to_id", toID).
		Str("source", cfg.Source.Kind).
		Str("endpoint", cfg.Destination.Endpoint).
		Bool("dry_run", cfg.Sync.DryRun).
		Str("version", version).
		Msg("Starting ballotsync")

	src, err := a.openSource(ctx, cfg.Source)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open source")
		return &exitError{code: exitInvalid, err: err}
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn().Err(err).Msg("Error closing source")
		}
	}()

	mutator := a.newMutator(cfg.Destination, cfg.Sync.DryRun, logger)
	syncer := syncpkg.New(src, mutator, base, syncpkg.Options{DryRun: cfg.Sync.DryRun})

	report, err := run(syncer, ctx, fromID, toID)

	if report != nil {
		a.finishReport(ctx, logger, cfg, report)
	}
	a.exportMetrics(ctx, logger, cfg, runID)

	if err != nil {
		return &exitError{code: exitInvalid, err: err}
	}
	if report.HasFailures() {
		return &exitError{code: exitFailures}
	}
	return nil
}

// finishReport logs the final counters and writes the report file.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (a *app) finishReport(_ context.Context, logger zerolog.Logger, cfg *config.Config, report *syncpkg.Report) {
	summary := report.Summary()
	for _, line := range summary.UpdatedProgress {
		fmt.Fprintln(a.stdout, line)
	}
	logger.Info().
		Str("status", summary.Status).
		Strs("updated", summary.UpdatedProgress).
		Int("failures", summary.FailureCount).
		Int("skipped", summary.SkippedCount).
		Float64("elapsed_seconds", summary.ElapsedSeconds).
		Msg("Sync finished")

	if cfg.Sync.ReportPath == "" {
		return
	}
	if err := writeReport(cfg.Sync.ReportPath, report); err != nil {
		logger.Error().Err(err).Str("path", cfg.Sync.ReportPath).Msg("Failed to write report")
		return
	}
	logger.Info().Str("path", cfg.Sync.ReportPath).Msg("Report written")
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (a *app) exportMetrics(ctx context.Context, logger zerolog.Logger, cfg *config.Config, runID string) {
	if cfg.Metrics.Textfile == "" && cfg.Metrics.PushURL == "" {
		return
	}
	err := metrics.Export(ctx, metrics.ExportConfig{
		Textfile: cfg.Metrics.Textfile,
		PushURL:  cfg.Metrics.PushURL,
		Job:      cfg.Metrics.Job,
		RunID:    runID,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to export metrics")
	}
}

// writeReport writes report as indented JSON.
func writeReport(path string, report *syncpkg.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
