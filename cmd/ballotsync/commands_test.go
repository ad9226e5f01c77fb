// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/ballotsync/internal/config"
	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/graphql"
	"github.com/tomtom215/ballotsync/internal/models"
)

type stubSource struct {
	people         []models.Person
	candidates     []models.Candidate
	constituencies []models.Constituency
	closed         bool
}

func (s *stubSource) LoadPeople(context.Context) ([]models.Person, error) {
	return s.people, nil
}

func (s *stubSource) LoadCandidates(context.Context, int, int) ([]models.Candidate, error) {
	return s.candidates, nil
}

func (s *stubSource) LoadConstituencies(context.Context, int, int) ([]models.Constituency, error) {
	return s.constituencies, nil
}

func (s *stubSource) Close() error {
	s.closed = true
	return nil
}

// stubMutator fails every call whose operation is in failOps.
type stubMutator struct {
	calls   []string
	failOps map[string]bool
}

func (m *stubMutator) Mutate(_ context.Context, op graphql.Operation, _ any) (int, error) {
	m.calls = append(m.calls, op.Name)
	if m.failOps[op.Name] {
		return 0, apperrors.NewMutationError(op.Name, 500, "boom", errors.New("unexpected status"))
	}
	return 1, nil
}

type harness struct {
	app     *app
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	cfg     *config.Config
	source  *stubSource
	mutator *stubMutator
	loads   int
	dryRun  bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		cfg: &config.Config{
			Source: config.SourceConfig{Kind: config.SourceWorkbook, WorkbookPath: "unused.xlsx"},
			Destination: config.DestinationConfig{
				Endpoint: "http://localhost:8080/v1/graphql",
			},
			Logging: config.LoggingConfig{Level: "info", Format: "json"},
			Metrics: config.MetricsConfig{Job: "ballotsync"},
		},
		source: &stubSource{
			people: []models.Person{{ID: "42", NameEN: "Chan"}},
			candidates: []models.Candidate{
				{ID: "1", PersonID: "42"},
				{ID: "2", PersonID: "42"},
			},
			constituencies: []models.Constituency{{ID: "1", Description: "north"}},
		},
		mutator: &stubMutator{failOps: map[string]bool{}},
	}

	h.app = newApp(h.stdout, h.stderr)
	h.app.loadConfig = func() (*config.Config, error) {
		h.loads++
		return h.cfg, nil
	}
	h.app.openSource = func(context.Context, config.SourceConfig) (batchSource, error) {
		return h.source, nil
	}
	h.app.newMutator = func(_ config.DestinationConfig, dryRun bool, _ zerolog.Logger) graphql.Mutator {
		h.dryRun = dryRun
		return h.mutator
	}
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.execute(context.Background(), args)
}

func TestExecute_NoArgsPrintsHelp(t *testing.T) {
	h := newHarness(t)

	code := h.run()

	assert.Equal(t, exitOK, code)
	assert.Contains(t, h.stdout.String(), "Usage:")
	assert.Contains(t, h.stdout.String(), "candidates")
	assert.Contains(t, h.stdout.String(), "constituencies")
	assert.Zero(t, h.loads, "help must not load configuration")
	assert.Empty(t, h.mutator.calls)
}

func TestExecute_Version(t *testing.T) {
	h := newHarness(t)

	code := h.run("--version")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, h.stdout.String(), "0.1.0")
	assert.Empty(t, h.mutator.calls)
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non-numeric from", []string{"candidates", "one", "5"}},
		{"non-numeric to", []string{"constituencies", "1", "5.5"}},
		{"missing to", []string{"candidates", "1"}},
		{"too many args", []string{"candidates", "1", "2", "3"}},
		{"unknown command", []string{"districts", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			code := h.run(tt.args...)

			assert.Equal(t, exitInvalid, code)
			assert.Contains(t, h.stderr.String(), "Error:")
			assert.Zero(t, h.loads)
			assert.Empty(t, h.mutator.calls)
		})
	}
}

func TestExecute_InvalidRange(t *testing.T) {
	h := newHarness(t)

	code := h.run("candidates", "10", "5")

	assert.Equal(t, exitInvalid, code)
	assert.Empty(t, h.mutator.calls)
	assert.Contains(t, h.stderr.String(), "Invalid from_id and to_id")
	assert.True(t, h.source.closed, "source must be closed")
}

func TestExecute_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.app.loadConfig = func() (*config.Config, error) {
		return nil, apperrors.ConfigInvalid(errors.New("destination.endpoint is required"))
	}

	code := h.run("constituencies", "1", "2")

	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, h.stderr.String(), "destination.endpoint is required")
	assert.Empty(t, h.mutator.calls)
}

func TestExecute_CandidatesSuccess(t *testing.T) {
	h := newHarness(t)
	h.cfg.Sync.ReportPath = filepath.Join(t.TempDir(), "report.json")

	code := h.run("candidates", "1", "2")

	require.Equal(t, exitOK, code, h.stderr.String())
	assert.Equal(t, []string{
		graphql.UpdateCandidate.Name, graphql.UpdatePerson.Name,
		graphql.UpdateCandidate.Name, graphql.UpdatePerson.Name,
	}, h.mutator.calls)
	assert.Contains(t, h.stdout.String(), "candidate 2/2")
	assert.Contains(t, h.stdout.String(), "person 2/2")
	assert.Contains(t, h.stderr.String(), "candidates updated: 2/2")

	data, err := os.ReadFile(h.cfg.Sync.ReportPath)
	require.NoError(t, err)

	var report struct {
		Operation string `json:"operation"`
		RunID     string `json:"run_id"`
		FromID    int    `json:"from_id"`
		ToID      int    `json:"to_id"`
		Entities  map[string]struct {
			Total   int `json:"total"`
			Updated int `json:"updated"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "candidates", report.Operation)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.FromID)
	assert.Equal(t, 2, report.ToID)
	assert.Equal(t, 2, report.Entities["candidate"].Updated)
	assert.Equal(t, 2, report.Entities["person"].Total)
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}

func TestExecute_OneRunIDPerLogLine(t *testing.T) {
	h := newHarness(t)

	code := h.run("candidates", "1", "2")
	require.Equal(t, exitOK, code, h.stderr.String())

	lines := strings.Split(strings.TrimSpace(h.stderr.String()), "\n")
	require.NotEmpty(t, lines)

	var first string
	for _, line := range lines {
		require.Equal(t, 1, strings.Count(line, `"run_id"`), line)

		var entry struct {
			RunID string `json:"run_id"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if first == "" {
			first = entry.RunID
		}
		assert.Equal(t, first, entry.RunID, "all lines of one run share the run id")
	}
	assert.Contains(t, h.stderr.String(), `"component":"sync"`)
}

func TestExecute_RowFailuresExitTwo(t *testing.T) {
	h := newHarness(t)
	h.mutator.failOps[graphql.UpdateConstituency.Name] = true

	code := h.run("constituencies", "1", "1")

	assert.Equal(t, exitFailures, code)
	assert.Len(t, h.mutator.calls, 1)
	assert.Contains(t, h.stdout.String(), "constituency 0/1")
}

func TestExecute_DryRunPassedToMutator(t *testing.T) {
	h := newHarness(t)
	h.cfg.Sync.DryRun = true

	code := h.run("constituencies", "1", "1")

	assert.Equal(t, exitOK, code)
	assert.True(t, h.dryRun)
}

func TestExecute_MetricsTextfile(t *testing.T) {
	h := newHarness(t)
	h.cfg.Metrics.Textfile = filepath.Join(t.TempDir(), "ballotsync.prom")

	code := h.run("constituencies", "1", "1")

	require.Equal(t, exitOK, code)
	data, err := os.ReadFile(h.cfg.Metrics.Textfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ballotsync_rows_total")
}

func TestParseRange(t *testing.T) {
	from, to, err := parseRange([]string{"-3", "007"})
	require.NoError(t, err)
	assert.Equal(t, -3, from)
	assert.Equal(t, 7, to)

	_, _, err = parseRange([]string{"0x10", "2"})
	assert.Error(t, err)
}
