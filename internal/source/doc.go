// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package source reads election reference rows from the master spreadsheet.

Two backends implement Table:
  - SheetsTable reads the live spreadsheet through the Google Sheets API v4.
  - WorkbookTable reads a downloaded .xlsx copy with excelize.

Reader sits on top of a Table. It filters rows by id range and decodes them
into the named row structures of internal/models, so no code past this
package indexes raw cells.

Every backend failure is returned as a SOURCE_UNAVAILABLE error. Nothing is
retried.
*/
package source
