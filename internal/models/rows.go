// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package models holds the spreadsheet row structures and the mutation
// payloads built from them.
//
// Rows keep every cell as the raw string read from the sheet. Coercion to
// typed values happens when a payload is built, never when a row is decoded.
package models

// Person is one row of the people sheet.
type Person struct {
	ID                  string // people.id
	NameEN              string // people.name_en
	NameZH              string // people.name_zh
	EstimatedYOB        string // people.estimated_yob
	Gender              string // people.gender
	RelatedOrganization string // people.related_organization
	UUID                string // people.uuid
	FCUUID              string // people.fc_uuid
	Description         string // people.description
}

// Candidate is one row of the candidates sheet.
type Candidate struct {
	ID                   string // candidates.id
	NameZH               string // candidates.name_zh
	NameEN               string // candidates.name_en
	PersonID             string // candidates.person_id
	ConstituencyCode     string // candidates.cacode
	PoliticalAffiliation string // candidates.political_affiliation
	Camp                 string // candidates.camp
	CandidateNumber      string // candidates.candidate_number
	Occupation           string // candidates.occupation
	NominatedAt          string // candidates.nominated_at
	NominateStatus       string // candidates.nominate_status
	FBID                 string // candidates.fb_id
	IGID                 string // candidates.ig_id
	Tags                 string // candidates.tags, "type:tag,type:tag"
}

// Constituency is one row of the constituencies sheet.
// Only Description is propagated to the backend.
type Constituency struct {
	ID                  string
	Code                string
	DistrictID          string
	Year                string
	NameEN              string
	NameZH              string
	ExpectedPopulation  string
	DeviationPercentage string
	Tags                string
	MetaTags            string
	MainAreas           string
	Boundaries          string
	Voters              string
	NewVoters           string
	Description         string
}
