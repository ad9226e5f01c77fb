// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/tomtom215/ballotsync/internal/errors"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"ballotsync.yaml",
	"ballotsync.yml",
	"/etc/ballotsync/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvPath is the .env file read before environment variables.
var DotEnvPath = ".env"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:       SourceSheets,
			HeaderRows: 1,
			Tables: TablesConfig{
				People:         "people",
				Candidates:     "candidates",
				Constituencies: "constituencies",
			},
		},
		Destination: DestinationConfig{
			Timeout:   30 * time.Second,
			RateLimit: 0, // unlimited
			Breaker: BreakerConfig{
				Enabled:     false,
				MaxFailures: 5,
				Timeout:     30 * time.Second,
			},
		},
		Sync: SyncConfig{
			DryRun: false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			Caller:     false,
			MaxSizeMB:  50,
			MaxBackups: 5,
			MaxAgeDays: 30,
		},
		Metrics: MetricsConfig{
			Job: "ballotsync",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. .env File: only keys not present in the process environment
//  4. Environment Variables: Override any setting
//
// Validation failures are returned as CONFIG_INVALID errors.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, apperrors.ConfigInvalid(fmt.Errorf("failed to load config file %s: %w", configPath, err))
		}
	}

	// Layer 3: .env values that the real environment does not override
	if err := loadDotEnv(k, DotEnvPath); err != nil {
		return nil, apperrors.ConfigInvalid(err)
	}

	// Layer 4: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, apperrors.ConfigInvalid(fmt.Errorf("failed to unmarshal configuration: %w", err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.ConfigInvalid(err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadDotEnv applies a .env file as a layer below the process environment.
// A missing file is not an error.
func loadDotEnv(k *koanf.Koanf, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for key, value := range values {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		configPath := envTransformFunc(key)
		if configPath == "" {
			continue
		}
		if err := k.Set(configPath, value); err != nil {
			return fmt.Errorf("failed to set %s from %s: %w", configPath, path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower case) to koanf paths.
var envMappings = map[string]string{
	// Source
	"source_kind":                    "source.kind",
	"google_spreadsheet_id":          "source.spreadsheet_id",
	"google_application_credentials": "source.credentials_file",
	"google_api_key":                 "source.api_key",
	"sheets_endpoint":                "source.endpoint",
	"workbook_path":                  "source.workbook_path",
	"source_header_rows":             "source.header_rows",
	"table_people":                   "source.tables.people",
	"table_candidates":               "source.tables.candidates",
	"table_constituencies":           "source.tables.constituencies",

	// Destination
	"graphql_endpoint":            "destination.endpoint",
	"hasura_graphql_admin_secret": "destination.admin_secret",
	"graphql_timeout":             "destination.timeout",
	"graphql_rate_limit":          "destination.rate_limit",
	"breaker_enabled":             "destination.breaker.enabled",
	"breaker_max_failures":        "destination.breaker.max_failures",
	"breaker_timeout":             "destination.breaker.timeout",

	// Sync
	"dry_run":     "sync.dry_run",
	"report_path": "sync.report_path",

	// Logging
	"log_level":        "logging.level",
	"log_format":       "logging.format",
	"log_caller":       "logging.caller",
	"log_file":         "logging.file",
	"log_max_size_mb":  "logging.max_size_mb",
	"log_max_backups":  "logging.max_backups",
	"log_max_age_days": "logging.max_age_days",

	// Metrics
	"metrics_textfile": "metrics.textfile",
	"metrics_push_url": "metrics.push_url",
	"metrics_job":      "metrics.job",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - GRAPHQL_ENDPOINT -> destination.endpoint
//   - GOOGLE_SPREADSHEET_ID -> source.spreadsheet_id
//   - LOG_LEVEL -> logging.level
//
// Unmapped variables return "" and are skipped, so unrelated environment
// variables never reach the configuration.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
