// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package sync

import (
	"testing"
	"time"
)

func TestReport_Summary(t *testing.T) {
	r := newReport(OperationCandidates, "abc12345", 1, 10, true)
	*r.stats(EntityCandidate) = EntityStats{Total: 3, Updated: 3}
	*r.stats(EntityPerson) = EntityStats{Total: 3, Updated: 2, Skipped: 1}
	r.Failures = append(r.Failures, Failure{Entity: EntityPerson, ID: "9", Code: "PERSON_NOT_FOUND"})

	s := r.Summary()
	if s.Status != "running" {
		t.Errorf("status before finish: expected running, got %s", s.Status)
	}

	r.finish()
	s = r.Summary()

	if s.Status != "completed" {
		t.Errorf("skipped rows alone should complete cleanly, got %s", s.Status)
	}
	if s.Range != "1-10" {
		t.Errorf("range: expected 1-10, got %s", s.Range)
	}
	if !s.DryRun {
		t.Error("dry run flag lost")
	}
	if s.FailureCount != 0 {
		t.Errorf("skips are not failures, got failure count %d", s.FailureCount)
	}
	if s.SkippedCount != 1 {
		t.Errorf("skipped count: expected 1, got %d", s.SkippedCount)
	}
	wantProgress := []string{"candidate 3/3", "person 2/3"}
	if len(s.UpdatedProgress) != len(wantProgress) {
		t.Fatalf("progress: expected %v, got %v", wantProgress, s.UpdatedProgress)
	}
	for i := range wantProgress {
		if s.UpdatedProgress[i] != wantProgress[i] {
			t.Errorf("progress[%d]: expected %q, got %q", i, wantProgress[i], s.UpdatedProgress[i])
		}
	}
}

func TestReport_HasFailures(t *testing.T) {
	r := newReport(OperationConstituencies, "run", 0, 0, false)
	r.stats(EntityConstituency).Total = 2
	r.stats(EntityConstituency).Updated = 1
	if r.HasFailures() {
		t.Error("no failures recorded yet")
	}

	r.stats(EntityConstituency).Failed = 1
	r.finish()
	if !r.HasFailures() {
		t.Error("expected failures")
	}
	r.stats(EntityPerson).Skipped = 2
	summary := r.Summary()
	if summary.Status != "completed_with_failures" {
		t.Errorf("status: expected completed_with_failures, got %s", summary.Status)
	}
	if summary.FailureCount != 1 || summary.SkippedCount != 2 {
		t.Errorf("counts: expected 1 failed and 2 skipped, got %d and %d", summary.FailureCount, summary.SkippedCount)
	}
}

func TestReport_Duration(t *testing.T) {
	r := newReport(OperationCandidates, "run", 1, 1, false)
	r.StartTime = time.Now().Add(-2 * time.Second)
	if r.Duration() < 2*time.Second {
		t.Errorf("running duration should track time since start, got %v", r.Duration())
	}

	r.EndTime = r.StartTime.Add(500 * time.Millisecond)
	if r.Duration() != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %v", r.Duration())
	}
}

func TestReport_EntityMissing(t *testing.T) {
	r := newReport(OperationCandidates, "run", 1, 1, false)
	if got := r.Entity(EntityConstituency); got != (EntityStats{}) {
		t.Errorf("expected zero stats, got %+v", got)
	}
	if len(r.Entities) != 0 {
		t.Error("Entity must not create counters")
	}
}
