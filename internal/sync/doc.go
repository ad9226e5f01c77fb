// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package sync drives the batch updates that copy spreadsheet rows into the
election backend.

Two batches exist:

  - SyncCandidates: for each candidate in an id range, UpdateCandidate
    (fields plus a full tag replacement), then UpdatePerson for the person
    the row references
  - SyncConstituencies: for each constituency in an id range,
    UpdateConstituency with the row's description

Rows are processed strictly in source order and one mutation is in flight
at a time. A failed or skipped row is recorded in the Report and the batch
moves on to the next row. Only problems that make the whole batch
meaningless abort it before any mutation is sent:

  - a reversed or negative id range (INVALID_RANGE)
  - a source that cannot be read (SOURCE_UNAVAILABLE)
  - a source that returns no rows for a required table (EMPTY_SOURCE_DATA)

Usage:

	s := sync.New(reader, mutator, logger, sync.Options{DryRun: cfg.Sync.DryRun})
	report, err := s.SyncCandidates(ctx, 1, 120)
	if err != nil {
	    return err
	}
	if report.HasFailures() {
	    ...
	}

Progress is logged after every row as "candidates updated: n/total" and
"people updated: n/total". Per-row outcomes are also counted in the
ballotsync_rows_total metric.
*/
package sync
