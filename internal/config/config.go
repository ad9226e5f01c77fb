// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package config

import (
	"time"

	"github.com/tomtom215/ballotsync/internal/logging"
)

// Config holds all settings of one ballotsync run.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (CONFIG_PATH, or ballotsync.yaml)
//  3. .env File: key=value pairs, only for variables not already set
//  4. Environment Variables: override any setting
//
// The loaded value is passed explicitly to the constructors that need it.
// There is no package-level configuration state.
type Config struct {
	Source      SourceConfig      `koanf:"source"`
	Destination DestinationConfig `koanf:"destination"`
	Sync        SyncConfig        `koanf:"sync"`
	Logging     LoggingConfig     `koanf:"logging"`
	Metrics     MetricsConfig     `koanf:"metrics"`
}

// Source kinds.
const (
	SourceSheets   = "sheets"
	SourceWorkbook = "workbook"
)

// SourceConfig selects and configures the spreadsheet backend.
//
// Environment Variables:
//   - SOURCE_KIND: sheets or workbook (default: sheets)
//   - GOOGLE_SPREADSHEET_ID: spreadsheet id for the sheets backend
//   - GOOGLE_APPLICATION_CREDENTIALS: service account JSON file
//   - GOOGLE_API_KEY: API key, used when no credentials file is set
//   - SHEETS_ENDPOINT: override of the Sheets API base URL
//   - WORKBOOK_PATH: local .xlsx export for the workbook backend
//   - SOURCE_HEADER_ROWS: leading rows skipped in every table (default: 1)
type SourceConfig struct {
	Kind            string       `koanf:"kind" validate:"oneof=sheets workbook"`
	SpreadsheetID   string       `koanf:"spreadsheet_id"`
	CredentialsFile string       `koanf:"credentials_file"`
	APIKey          string       `koanf:"api_key"`
	Endpoint        string       `koanf:"endpoint" validate:"omitempty,http_url"`
	WorkbookPath    string       `koanf:"workbook_path"`
	HeaderRows      int          `koanf:"header_rows" validate:"gte=0"`
	Tables          TablesConfig `koanf:"tables"`
}

// TablesConfig maps logical tables to sheet (tab) names.
type TablesConfig struct {
	People         string `koanf:"people" validate:"required"`
	Candidates     string `koanf:"candidates" validate:"required"`
	Constituencies string `koanf:"constituencies" validate:"required"`
}

// DestinationConfig configures the GraphQL mutation endpoint.
//
// Environment Variables:
//   - GRAPHQL_ENDPOINT: GraphQL URL (required)
//   - HASURA_GRAPHQL_ADMIN_SECRET: value of the x-hasura-admin-secret header
//   - GRAPHQL_TIMEOUT: per-request timeout (default: 30s)
//   - GRAPHQL_RATE_LIMIT: requests per second, 0 = unlimited (default: 0)
//   - BREAKER_ENABLED, BREAKER_MAX_FAILURES, BREAKER_TIMEOUT
type DestinationConfig struct {
	Endpoint    string        `koanf:"endpoint" validate:"required,http_url"`
	AdminSecret string        `koanf:"admin_secret"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	RateLimit   float64       `koanf:"rate_limit" validate:"gte=0"`
	Breaker     BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the optional mutation circuit breaker.
// After MaxFailures consecutive failures further mutations fail immediately
// until Timeout has elapsed.
type BreakerConfig struct {
	Enabled     bool          `koanf:"enabled"`
	MaxFailures uint32        `koanf:"max_failures"`
	Timeout     time.Duration `koanf:"timeout"`
}

// SyncConfig holds run-level switches.
//
// Environment Variables:
//   - DRY_RUN: log mutations instead of sending them (default: false)
//   - REPORT_PATH: write the run report as JSON to this file
type SyncConfig struct {
	DryRun     bool   `koanf:"dry_run"`
	ReportPath string `koanf:"report_path"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
//   - LOG_FILE: also write JSON logs to this rotated file
type LoggingConfig struct {
	Level      string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic"`
	Format     string `koanf:"format" validate:"oneof=json console"`
	Caller     bool   `koanf:"caller"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `koanf:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `koanf:"max_age_days" validate:"gte=0"`
}

// MetricsConfig controls where run metrics are exported after a batch.
//
// Environment Variables:
//   - METRICS_TEXTFILE: node-exporter textfile collector path
//   - METRICS_PUSH_URL: Prometheus Pushgateway URL
//   - METRICS_JOB: Pushgateway job name (default: ballotsync)
type MetricsConfig struct {
	Textfile string `koanf:"textfile"`
	PushURL  string `koanf:"push_url" validate:"omitempty,http_url"`
	Job      string `koanf:"job" validate:"required"`
}

// LoggerConfig converts the logging section into a logging.Config.
func (c *Config) LoggerConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Format = c.Logging.Format
	lc.Caller = c.Logging.Caller
	lc.File = c.Logging.File
	if c.Logging.MaxSizeMB > 0 {
		lc.MaxSizeMB = c.Logging.MaxSizeMB
	}
	if c.Logging.MaxBackups > 0 {
		lc.MaxBackups = c.Logging.MaxBackups
	}
	if c.Logging.MaxAgeDays > 0 {
		lc.MaxAgeDays = c.Logging.MaxAgeDays
	}
	return lc
}

// Load reads configuration from:
//  1. Built-in defaults
//  2. Config file (ballotsync.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. .env in the working directory
//  4. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
