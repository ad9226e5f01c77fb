// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package sync

import (
	"fmt"
	"sort"
	"time"
)

// Entity kinds.
const (
	EntityCandidate    = "candidate"
	EntityPerson       = "person"
	EntityConstituency = "constituency"
)

// Batch operations.
const (
	OperationCandidates     = "candidates"
	OperationConstituencies = "constituencies"
)

// EntityStats counts row outcomes for one entity kind.
// Updated + Failed + Skipped == Total once a batch has finished.
type EntityStats struct {
	Total   int `json:"total"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Failure records one row that was not updated, either because its
// mutation failed or because it was skipped.
type Failure struct {
	Entity    string `json:"entity"`
	ID        string `json:"id"`
	RelatedID string `json:"related_id,omitempty"`
	Code      string `json:"code"`
	Reason    string `json:"reason"`
}

// Report is the outcome of one batch.
type Report struct {
	Operation string                  `json:"operation"`
	RunID     string                  `json:"run_id"`
	FromID    int                     `json:"from_id"`
	ToID      int                     `json:"to_id"`
	DryRun    bool                    `json:"dry_run"`
	Entities  map[string]*EntityStats `json:"entities"`
	Failures  []Failure               `json:"failures"`
	StartTime time.Time               `json:"start_time"`
	EndTime   time.Time               `json:"end_time"`
}

func newReport(operation, runID string, fromID, toID int, dryRun bool) *Report {
	return &Report{
		Operation: operation,
		RunID:     runID,
		FromID:    fromID,
		ToID:      toID,
		DryRun:    dryRun,
		Entities:  make(map[string]*EntityStats),
		Failures:  []Failure{},
		StartTime: time.Now(),
	}
}

// stats returns the counters for entity, creating them on first use.
func (r *Report) stats(entity string) *EntityStats {
	s, ok := r.Entities[entity]
	if !ok {
		s = &EntityStats{}
		r.Entities[entity] = s
	}
	return s
}

func (r *Report) finish() {
	r.EndTime = time.Now()
}

// HasFailures reports whether any row failed. Skipped rows are not failures.
func (r *Report) HasFailures() bool {
	for _, s := range r.Entities {
		if s.Failed > 0 {
			return true
		}
	}
	return false
}

// count sums field over all entity kinds.
func (r *Report) count(field func(*EntityStats) int) int {
	n := 0
	for _, s := range r.Entities {
		n += field(s)
	}
	return n
}

// Duration returns the duration of the batch.
func (r *Report) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// Entity returns a copy of the counters for entity.
func (r *Report) Entity(entity string) EntityStats {
	if s, ok := r.Entities[entity]; ok {
		return *s
	}
	return EntityStats{}
}

// Summary is a flat view of a Report for logs and status output.
// FailureCount counts failed mutations only; skipped rows are in SkippedCount.
type Summary struct {
	Operation       string                 `json:"operation"`
	RunID           string                 `json:"run_id"`
	Status          string                 `json:"status"`
	Range           string                 `json:"range"`
	DryRun          bool                   `json:"dry_run"`
	ElapsedSeconds  float64                `json:"elapsed_seconds"`
	Entities        map[string]EntityStats `json:"entities"`
	FailureCount    int                    `json:"failure_count"`
	SkippedCount    int                    `json:"skipped_count"`
	UpdatedProgress []string               `json:"updated_progress"`
}

// Summary converts the report to a Summary with calculated fields.
func (r *Report) Summary() *Summary {
	s := &Summary{
		Operation:      r.Operation,
		RunID:          r.RunID,
		Range:          fmt.Sprintf("%d-%d", r.FromID, r.ToID),
		DryRun:         r.DryRun,
		ElapsedSeconds: r.Duration().Seconds(),
		Entities:       make(map[string]EntityStats, len(r.Entities)),
		FailureCount:   r.count(func(e *EntityStats) int { return e.Failed }),
		SkippedCount:   r.count(func(e *EntityStats) int { return e.Skipped }),
	}

	kinds := make([]string, 0, len(r.Entities))
	for kind, stats := range r.Entities {
		s.Entities[kind] = *stats
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		stats := r.Entities[kind]
		s.UpdatedProgress = append(s.UpdatedProgress, fmt.Sprintf("%s %d/%d", kind, stats.Updated, stats.Total))
	}

	switch {
	case r.EndTime.IsZero():
		s.Status = "running"
	case r.HasFailures():
		s.Status = "completed_with_failures"
	default:
		s.Status = "completed"
	}

	return s
}
