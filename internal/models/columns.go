// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package models

import "strings"

// Column positions in the master spreadsheet. Columns not listed are
// present in the sheet but unused.
const (
	personColID                  = 0
	personColNameEN              = 1
	personColNameZH              = 2
	personColEstimatedYOB        = 3
	personColGender              = 4
	personColRelatedOrganization = 5
	personColUUID                = 6
	personColFCUUID              = 7
	personColDescription         = 8

	candidateColID                   = 0
	candidateColNameZH               = 1
	candidateColNameEN               = 2
	candidateColPersonID             = 4
	candidateColConstituencyCode     = 7
	candidateColPoliticalAffiliation = 10
	candidateColCamp                 = 11
	candidateColCandidateNumber      = 12
	candidateColOccupation           = 13
	candidateColNominatedAt          = 14
	candidateColNominateStatus       = 15
	candidateColFBID                 = 18
	candidateColIGID                 = 19
	candidateColTags                 = 20

	constituencyColID                  = 0
	constituencyColCode                = 1
	constituencyColDistrictID          = 2
	constituencyColYear                = 3
	constituencyColNameEN              = 4
	constituencyColNameZH              = 5
	constituencyColExpectedPopulation  = 6
	constituencyColDeviationPercentage = 7
	constituencyColTags                = 8
	constituencyColMetaTags            = 9
	constituencyColMainAreas           = 10
	constituencyColBoundaries          = 11
	constituencyColVoters              = 12
	constituencyColNewVoters           = 13
	constituencyColDescription         = 14
)

// cell returns row[i], or "" when the sheet trimmed trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// RowID returns the trimmed id cell of a raw row.
func RowID(row []string) string {
	return strings.TrimSpace(cell(row, 0))
}

// PersonFromRow decodes a raw people row.
func PersonFromRow(row []string) Person {
	return Person{
		ID:                  RowID(row),
		NameEN:              cell(row, personColNameEN),
		NameZH:              cell(row, personColNameZH),
		EstimatedYOB:        cell(row, personColEstimatedYOB),
		Gender:              cell(row, personColGender),
		RelatedOrganization: cell(row, personColRelatedOrganization),
		UUID:                cell(row, personColUUID),
		FCUUID:              cell(row, personColFCUUID),
		Description:         cell(row, personColDescription),
	}
}

// CandidateFromRow decodes a raw candidates row.
func CandidateFromRow(row []string) Candidate {
	return Candidate{
		ID:                   RowID(row),
		NameZH:               cell(row, candidateColNameZH),
		NameEN:               cell(row, candidateColNameEN),
		PersonID:             strings.TrimSpace(cell(row, candidateColPersonID)),
		ConstituencyCode:     cell(row, candidateColConstituencyCode),
		PoliticalAffiliation: cell(row, candidateColPoliticalAffiliation),
		Camp:                 cell(row, candidateColCamp),
		CandidateNumber:      cell(row, candidateColCandidateNumber),
		Occupation:           cell(row, candidateColOccupation),
		NominatedAt:          cell(row, candidateColNominatedAt),
		NominateStatus:       cell(row, candidateColNominateStatus),
		FBID:                 cell(row, candidateColFBID),
		IGID:                 cell(row, candidateColIGID),
		Tags:                 cell(row, candidateColTags),
	}
}

// ConstituencyFromRow decodes a raw constituencies row.
func ConstituencyFromRow(row []string) Constituency {
	return Constituency{
		ID:                  RowID(row),
		Code:                cell(row, constituencyColCode),
		DistrictID:          cell(row, constituencyColDistrictID),
		Year:                cell(row, constituencyColYear),
		NameEN:              cell(row, constituencyColNameEN),
		NameZH:              cell(row, constituencyColNameZH),
		ExpectedPopulation:  cell(row, constituencyColExpectedPopulation),
		DeviationPercentage: cell(row, constituencyColDeviationPercentage),
		Tags:                cell(row, constituencyColTags),
		MetaTags:            cell(row, constituencyColMetaTags),
		MainAreas:           cell(row, constituencyColMainAreas),
		Boundaries:          cell(row, constituencyColBoundaries),
		Voters:              cell(row, constituencyColVoters),
		NewVoters:           cell(row, constituencyColNewVoters),
		Description:         cell(row, constituencyColDescription),
	}
}
