// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package source

import (
	"context"
	"io"
	"strconv"

	apperrors "github.com/tomtom215/ballotsync/internal/errors"
	"github.com/tomtom215/ballotsync/internal/models"
)

// TableNames maps the logical tables to sheet names.
type TableNames struct {
	People         string
	Candidates     string
	Constituencies string
}

// Reader loads typed rows from a Table.
type Reader struct {
	table  Table
	names  TableNames
	closer io.Closer
}

// NewReader creates a Reader over table. If table implements io.Closer,
// Close releases it.
func NewReader(table Table, names TableNames) *Reader {
	r := &Reader{table: table, names: names}
	if c, ok := table.(io.Closer); ok {
		r.closer = c
	}
	return r
}

// Close releases the underlying backend.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// FetchAllRows returns every data row of table.
func (r *Reader) FetchAllRows(ctx context.Context, table string) ([][]string, error) {
	rows, err := r.table.ReadTable(ctx, table)
	if err != nil {
		return nil, apperrors.SourceUnavailable(err, table)
	}
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

// FetchRowsByIDRange returns the rows of table whose first cell is an
// integer in [fromID, toID], in sheet order. Rows with a non-numeric id are
// never in range. An empty result is not an error.
func (r *Reader) FetchRowsByIDRange(ctx context.Context, table string, fromID, toID int) ([][]string, error) {
	rows, err := r.FetchAllRows(ctx, table)
	if err != nil {
		return nil, err
	}

	matched := make([][]string, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.Atoi(models.RowID(row))
		if err != nil {
			continue
		}
		if id >= fromID && id <= toID {
			matched = append(matched, row)
		}
	}
	return matched, nil
}

// LoadPeople returns every person row.
func (r *Reader) LoadPeople(ctx context.Context) ([]models.Person, error) {
	rows, err := r.FetchAllRows(ctx, r.names.People)
	if err != nil {
		return nil, err
	}
	people := make([]models.Person, len(rows))
	for i, row := range rows {
		people[i] = models.PersonFromRow(row)
	}
	return people, nil
}

// LoadCandidates returns the candidate rows with ids in [fromID, toID].
func (r *Reader) LoadCandidates(ctx context.Context, fromID, toID int) ([]models.Candidate, error) {
	rows, err := r.FetchRowsByIDRange(ctx, r.names.Candidates, fromID, toID)
	if err != nil {
		return nil, err
	}
	candidates := make([]models.Candidate, len(rows))
	for i, row := range rows {
		candidates[i] = models.CandidateFromRow(row)
	}
	return candidates, nil
}

// LoadConstituencies returns the constituency rows with ids in [fromID, toID].
func (r *Reader) LoadConstituencies(ctx context.Context, fromID, toID int) ([]models.Constituency, error) {
	rows, err := r.FetchRowsByIDRange(ctx, r.names.Constituencies, fromID, toID)
	if err != nil {
		return nil, err
	}
	constituencies := make([]models.Constituency, len(rows))
	for i, row := range rows {
		constituencies[i] = models.ConstituencyFromRow(row)
	}
	return constituencies, nil
}
