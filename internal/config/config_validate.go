// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package config

import (
	"fmt"

	"github.com/tomtom215/ballotsync/internal/validation"
)

// Validate checks struct tag rules first, then the cross-field rules that
// tags cannot express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateSource(); err != nil {
		return err
	}

	return c.validateBreaker()
}

// validateSource checks that the selected backend has what it needs.
func (c *Config) validateSource() error {
	switch c.Source.Kind {
	case SourceSheets:
		if c.Source.SpreadsheetID == "" {
			return fmt.Errorf("GOOGLE_SPREADSHEET_ID is required when SOURCE_KIND=%s", SourceSheets)
		}
		if c.Source.CredentialsFile == "" && c.Source.APIKey == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_API_KEY is required when SOURCE_KIND=%s", SourceSheets)
		}
	case SourceWorkbook:
		if c.Source.WorkbookPath == "" {
			return fmt.Errorf("WORKBOOK_PATH is required when SOURCE_KIND=%s", SourceWorkbook)
		}
	}
	return nil
}

// validateBreaker validates breaker settings (only if enabled).
func (c *Config) validateBreaker() error {
	if !c.Destination.Breaker.Enabled {
		return nil
	}
	if c.Destination.Breaker.MaxFailures == 0 {
		return fmt.Errorf("BREAKER_MAX_FAILURES must be at least 1 when BREAKER_ENABLED=true")
	}
	if c.Destination.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive when BREAKER_ENABLED=true")
	}
	return nil
}
