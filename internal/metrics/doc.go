// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package metrics provides Prometheus metrics for ballotsync runs.

A run is a short-lived batch, so nothing is served over HTTP. Metrics are
collected into Registry while the batch runs and exported once at the end,
either to a node-exporter textfile collector, a Pushgateway, or both.

# Available Metrics

Row Metrics:
  - ballotsync_rows_total: Rows processed (counter)
    Labels: entity (candidate, person, constituency), outcome (updated, failed, skipped)

Mutation Metrics:
  - ballotsync_mutation_duration_seconds: GraphQL round trip (histogram)
    Labels: operation
  - ballotsync_mutations_total: Mutations sent (counter)
    Labels: operation, result

Batch Metrics:
  - ballotsync_batch_duration_seconds: Wall time of the last batch (gauge)
  - ballotsync_last_success_timestamp: Last batch without row failures (gauge)
    Labels: operation (candidates, constituencies)

Circuit Breaker Metrics:
  - ballotsync_circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - ballotsync_circuit_breaker_requests_total: Requests by result (counter)
  - ballotsync_circuit_breaker_consecutive_failures (gauge)
  - ballotsync_circuit_breaker_state_transitions_total (counter)

# Export

	err := metrics.Export(ctx, metrics.ExportConfig{
	    Textfile: "/var/lib/node_exporter/ballotsync.prom",
	    PushURL:  "http://pushgateway:9091",
	    Job:      "ballotsync",
	})
*/
package metrics
