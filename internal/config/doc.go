// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package config loads and validates ballotsync configuration.

# Configuration Sources

Values are layered with Koanf v2, later layers winning:
  - Built-in defaults
  - YAML file: CONFIG_PATH, ballotsync.yaml, ballotsync.yml, /etc/ballotsync/config.yaml
  - .env file in the working directory (keys already in the environment are ignored)
  - Environment variables

# Example File

	source:
	  kind: sheets
	  spreadsheet_id: 1AbC...
	  credentials_file: /secrets/sheets.json
	  header_rows: 1
	  tables:
	    people: people
	    candidates: candidates
	    constituencies: constituencies
	destination:
	  endpoint: https://hasura.example.org/v1/graphql
	  admin_secret: change-me
	  timeout: 30s
	  rate_limit: 5
	  breaker:
	    enabled: true
	    max_failures: 5
	    timeout: 30s
	sync:
	  dry_run: false
	  report_path: /var/lib/ballotsync/last-run.json
	logging:
	  level: info
	  format: console
	metrics:
	  textfile: /var/lib/node_exporter/ballotsync.prom

# Validation

Validate applies go-playground/validator struct tags (see internal/validation)
and then cross-field rules: the sheets backend needs a spreadsheet id and
either a credentials file or an API key, the workbook backend needs a path,
and an enabled breaker needs a positive failure threshold and timeout.
LoadWithKoanf reports every failure as a CONFIG_INVALID error.
*/
package config
