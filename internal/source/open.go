// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package source

import (
	"context"
	"fmt"

	"github.com/tomtom215/ballotsync/internal/config"
	apperrors "github.com/tomtom215/ballotsync/internal/errors"
)

// Open builds a Reader for the configured backend.
func Open(ctx context.Context, cfg config.SourceConfig) (*Reader, error) {
	names := TableNames{
		People:         cfg.Tables.People,
		Candidates:     cfg.Tables.Candidates,
		Constituencies: cfg.Tables.Constituencies,
	}

	switch cfg.Kind {
	case config.SourceSheets:
		table, err := NewSheetsTable(ctx, SheetsConfig{
			SpreadsheetID:   cfg.SpreadsheetID,
			CredentialsFile: cfg.CredentialsFile,
			APIKey:          cfg.APIKey,
			Endpoint:        cfg.Endpoint,
			HeaderRows:      cfg.HeaderRows,
		})
		if err != nil {
			return nil, apperrors.SourceUnavailable(err, "spreadsheet "+cfg.SpreadsheetID)
		}
		return NewReader(table, names), nil

	case config.SourceWorkbook:
		table, err := NewWorkbookTable(cfg.WorkbookPath, cfg.HeaderRows)
		if err != nil {
			return nil, apperrors.SourceUnavailable(err, cfg.WorkbookPath)
		}
		return NewReader(table, names), nil

	default:
		return nil, apperrors.ConfigInvalid(fmt.Errorf("unknown source kind %q", cfg.Kind))
	}
}
