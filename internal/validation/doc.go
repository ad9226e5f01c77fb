// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the process because the library
// caches reflected struct metadata per instance. Field names in error
// messages follow koanf tags, so a failure on
//
//	type DestinationConfig struct {
//	    Endpoint string `koanf:"endpoint" validate:"required,http_url"`
//	}
//
// nested under `koanf:"destination"` is reported as
// "destination.endpoint must be an http or https URL".
//
// Usage:
//
//	if verr := validation.ValidateStruct(cfg); verr != nil {
//	    return fmt.Errorf("invalid configuration: %w", verr)
//	}
package validation
