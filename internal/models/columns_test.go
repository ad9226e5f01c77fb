// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package models

import "testing"

func candidateRow() []string {
	row := make([]string, 21)
	row[0] = " 12 "
	row[1] = "陳大文"
	row[2] = "Chan Tai Man"
	row[4] = "42"
	row[7] = "A01"
	row[10] = "Independent"
	row[11] = "other"
	row[12] = "3"
	row[13] = "Nurse"
	row[14] = "2019-10-04"
	row[15] = "confirmed"
	row[18] = "chan.fb"
	row[19] = "chan.ig"
	row[20] = "endorsement:PartyA"
	return row
}

func TestCandidateFromRow(t *testing.T) {
	c := CandidateFromRow(candidateRow())

	if c.ID != "12" {
		t.Errorf("ID = %q, want 12", c.ID)
	}
	if c.PersonID != "42" {
		t.Errorf("PersonID = %q, want 42", c.PersonID)
	}
	if c.ConstituencyCode != "A01" {
		t.Errorf("ConstituencyCode = %q, want A01", c.ConstituencyCode)
	}
	if c.Camp != "other" {
		t.Errorf("Camp = %q, want other", c.Camp)
	}
	if c.FBID != "chan.fb" || c.IGID != "chan.ig" {
		t.Errorf("social ids = %q/%q", c.FBID, c.IGID)
	}
	if c.Tags != "endorsement:PartyA" {
		t.Errorf("Tags = %q", c.Tags)
	}
}

func TestCandidateFromRow_ShortRow(t *testing.T) {
	c := CandidateFromRow([]string{"7", "name"})

	if c.ID != "7" {
		t.Errorf("ID = %q, want 7", c.ID)
	}
	if c.Tags != "" || c.IGID != "" || c.PersonID != "" {
		t.Errorf("missing cells should decode empty, got %+v", c)
	}
}

func TestPersonFromRow(t *testing.T) {
	p := PersonFromRow([]string{"42", "Chan", "陳", "1970", "M", "Org", "uuid-1", "fc-1", "desc"})

	if p.ID != "42" || p.NameEN != "Chan" || p.NameZH != "陳" {
		t.Errorf("names decoded wrong: %+v", p)
	}
	if p.EstimatedYOB != "1970" || p.Gender != "M" || p.RelatedOrganization != "Org" {
		t.Errorf("attributes decoded wrong: %+v", p)
	}
	if p.UUID != "uuid-1" || p.FCUUID != "fc-1" || p.Description != "desc" {
		t.Errorf("ids decoded wrong: %+v", p)
	}
}

func TestConstituencyFromRow(t *testing.T) {
	row := make([]string, 15)
	row[0] = "3"
	row[1] = "A03"
	row[14] = "Harbour district"

	c := ConstituencyFromRow(row)
	if c.ID != "3" || c.Code != "A03" || c.Description != "Harbour district" {
		t.Errorf("constituency decoded wrong: %+v", c)
	}

	if got := ConstituencyFromRow(row[:2]).Description; got != "" {
		t.Errorf("short row Description = %q, want empty", got)
	}
}

func TestRowID(t *testing.T) {
	if got := RowID(nil); got != "" {
		t.Errorf("RowID(nil) = %q", got)
	}
	if got := RowID([]string{" 5\t"}); got != "5" {
		t.Errorf("RowID = %q, want 5", got)
	}
}
