// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package source

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsConfig configures a SheetsTable.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string
	APIKey          string
	Endpoint        string // optional API base URL override
	HeaderRows      int
}

// SheetsTable reads tabs of a Google spreadsheet.
type SheetsTable struct {
	svc           *sheets.Service
	spreadsheetID string
	headerRows    int
}

// NewSheetsTable creates a read-only Sheets client. A credentials file takes
// precedence over an API key.
func NewSheetsTable(ctx context.Context, cfg SheetsConfig) (*SheetsTable, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsReadonlyScope)}
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsTable{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		headerRows:    cfg.HeaderRows,
	}, nil
}

// ReadTable reads the whole tab as formatted strings.
func (t *SheetsTable) ReadTable(ctx context.Context, name string) ([][]string, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, sheetRange(name)).
		ValueRenderOption("FORMATTED_VALUE").
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets values.get %s: %w", name, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, values := range resp.Values {
		row := make([]string, len(values))
		for j, v := range values {
			row[j] = cellString(v)
		}
		rows[i] = row
	}
	return dataRows(rows, t.headerRows), nil
}

// sheetRange quotes a tab name as an A1 range covering the whole tab.
func sheetRange(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

func cellString(v interface{}) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
