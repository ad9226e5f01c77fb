// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package models

// Pointer fields marshal to JSON null when unset, which clears the column.

// PersonUpdate is the _set input of UpdatePerson.
type PersonUpdate struct {
	NameZH              *string `json:"name_zh"`
	NameEN              *string `json:"name_en"`
	RelatedOrganization *string `json:"related_organization"`
	EstimatedYOB        *int    `json:"estimated_yob"`
	Gender              *string `json:"gender"`
	FCUUID              *string `json:"fc_uuid"`
	Description         *string `json:"description"`
}

// CandidateUpdate is the _set input of UpdateCandidate. Camp is passed
// through as read.
type CandidateUpdate struct {
	PoliticalAffiliation *string `json:"political_affiliation"`
	Camp                 string  `json:"camp"`
	Occupation           *string `json:"occupation"`
	NominatedAt          *string `json:"nominated_at"`
	NominateStatus       *string `json:"nominate_status"`
	CandidateNumber      *string `json:"candidate_number"`
	FBID                 *string `json:"fb_id"`
	IGID                 *string `json:"ig_id"`
}

// ConstituencyUpdate is the _set input of UpdateConstituency.
type ConstituencyUpdate struct {
	Description string `json:"description"`
}

// Tag is one candidate tag row inserted by UpdateCandidate.
type Tag struct {
	CandidateID *int   `json:"candidate_id"`
	Type        string `json:"type"`
	Tag         string `json:"tag"`
}

// PersonVariables are the variables of UpdatePerson.
type PersonVariables struct {
	PersonID    *int         `json:"personId"`
	UpdateInput PersonUpdate `json:"updateInput"`
}

// CandidateVariables are the variables of UpdateCandidate.
type CandidateVariables struct {
	CandidateID *int            `json:"candidateId"`
	UpdateInput CandidateUpdate `json:"updateInput"`
	Tags        []Tag           `json:"tags"`
}

// ConstituencyVariables are the variables of UpdateConstituency.
type ConstituencyVariables struct {
	ConstituencyID *int               `json:"constituencyId"`
	UpdateInput    ConstituencyUpdate `json:"updateInput"`
}
