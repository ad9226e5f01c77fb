// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package sync

import "testing"

// Assertion helpers for optional payload fields.
// Using t.Helper() ensures error messages point to the calling line.

// checkStringPtrNil checks that ptr is nil
func checkStringPtrNil(t *testing.T, fieldName string, ptr *string) {
	t.Helper()
	if ptr != nil {
		t.Errorf("%s should be nil, got %q", fieldName, *ptr)
	}
}

// checkStringPtrEqual checks that ptr is not nil and equals want
func checkStringPtrEqual(t *testing.T, fieldName string, ptr *string, want string) {
	t.Helper()
	if ptr == nil {
		t.Errorf("%s should not be nil, expected %q", fieldName, want)
		return
	}
	if *ptr != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, *ptr)
	}
}

// checkIntPtrNil checks that ptr is nil
func checkIntPtrNil(t *testing.T, fieldName string, ptr *int) {
	t.Helper()
	if ptr != nil {
		t.Errorf("%s should be nil, got %d", fieldName, *ptr)
	}
}

// checkIntPtrEqual checks that ptr is not nil and equals want
func checkIntPtrEqual(t *testing.T, fieldName string, ptr *int, want int) {
	t.Helper()
	if ptr == nil {
		t.Errorf("%s should not be nil, expected %d", fieldName, want)
		return
	}
	if *ptr != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, *ptr)
	}
}

// checkEntity checks all four counters of one entity.
func checkEntity(t *testing.T, r *Report, entity string, want EntityStats) {
	t.Helper()
	if got := r.Entity(entity); got != want {
		t.Errorf("%s stats: expected %+v, got %+v", entity, want, got)
	}
}
