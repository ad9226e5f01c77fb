// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/xuri/excelize/v2"
)

// WorkbookTable reads sheets of a local .xlsx export.
type WorkbookTable struct {
	mu         sync.Mutex
	file       *excelize.File
	path       string
	headerRows int
}

// NewWorkbookTable opens the workbook at path.
func NewWorkbookTable(path string, headerRows int) (*WorkbookTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &WorkbookTable{file: f, path: path, headerRows: headerRows}, nil
}

// ReadTable reads the named sheet as displayed strings.
func (t *WorkbookTable) ReadTable(ctx context.Context, name string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	rows, err := t.file.GetRows(name)
	t.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", name, t.path, err)
	}
	return dataRows(rows, t.headerRows), nil
}

// Close closes the workbook.
func (t *WorkbookTable) Close() error {
	return t.file.Close()
}
