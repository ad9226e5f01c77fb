// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package main is the entry point for the ballotsync command.
//
// ballotsync copies election reference data maintained in a spreadsheet into
// the election GraphQL backend. Each invocation runs one batch over an
// inclusive id range and exits.
//
// # Commands
//
//	ballotsync candidates <fromId> <toId>       # UpdateCandidate + UpdatePerson per row
//	ballotsync constituencies <fromId> <toId>   # UpdateConstituency per row
//	ballotsync --version
//
// With no arguments the help text is printed and nothing is sent.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - .env in the working directory (never overrides the process environment)
//   - Config file (ballotsync.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// The minimum for a Google Sheets source:
//
//	export GOOGLE_SPREADSHEET_ID=1AbC...
//	export GOOGLE_APPLICATION_CREDENTIALS=/secrets/sa.json
//	export GRAPHQL_ENDPOINT=https://hasura.example.org/v1/graphql
//	export HASURA_GRAPHQL_ADMIN_SECRET=...
//	ballotsync candidates 1 120
//
// A local workbook works the same way:
//
//	SOURCE_KIND=workbook WORKBOOK_PATH=./candidates.xlsx DRY_RUN=true ballotsync constituencies 1 50
//
// # Exit Codes
//
//   - 0: every row was updated (skipped rows do not count as failures)
//   - 1: the batch could not run: bad arguments, invalid configuration,
//     invalid range, unreadable or empty source
//   - 2: the batch ran but at least one mutation failed
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the batch after the row in flight. The partial
// report and metrics are still written.
package main
