// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package source

import (
	"context"
	"strings"
)

// Table is a spreadsheet backend. ReadTable returns every data row of the
// named sheet in sheet order, with header rows removed.
type Table interface {
	ReadTable(ctx context.Context, name string) ([][]string, error)
}

// dataRows drops the first headerRows rows and any row whose cells are all
// blank. Spreadsheet exports keep blank separator rows; they never carry data.
func dataRows(rows [][]string, headerRows int) [][]string {
	if headerRows >= len(rows) {
		return [][]string{}
	}
	if headerRows < 0 {
		headerRows = 0
	}

	out := make([][]string, 0, len(rows)-headerRows)
	for _, row := range rows[headerRows:] {
		if isBlank(row) {
			continue
		}
		out = append(out, row)
	}
	return out
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
