// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package sync

import (
	"github.com/tomtom215/ballotsync/internal/coerce"
	"github.com/tomtom215/ballotsync/internal/models"
)

// candidateVariables builds the UpdateCandidate variables for a row. Tag
// entries without a type are returned separately so the caller can log them.
func candidateVariables(c *models.Candidate) (vars models.CandidateVariables, malformedTags []string) {
	candidateID := coerce.Int(c.ID)

	entries, malformedTags := coerce.ParseTagList(c.Tags)
	tags := make([]models.Tag, len(entries))
	for i, e := range entries {
		tags[i] = models.Tag{
			CandidateID: candidateID,
			Type:        e.Type,
			Tag:         e.Tag,
		}
	}

	vars = models.CandidateVariables{
		CandidateID: candidateID,
		UpdateInput: models.CandidateUpdate{
			PoliticalAffiliation: coerce.String(c.PoliticalAffiliation),
			Camp:                 c.Camp,
			Occupation:           coerce.String(c.Occupation),
			NominatedAt:          coerce.String(c.NominatedAt),
			NominateStatus:       coerce.String(c.NominateStatus),
			CandidateNumber:      coerce.String(c.CandidateNumber),
			FBID:                 coerce.String(c.FBID),
			IGID:                 coerce.String(c.IGID),
		},
		Tags: tags,
	}
	return vars, malformedTags
}

// personVariables builds the UpdatePerson variables. personID is the id
// taken from the candidate row that referenced the person.
func personVariables(personID string, p *models.Person) models.PersonVariables {
	return models.PersonVariables{
		PersonID: coerce.Int(personID),
		UpdateInput: models.PersonUpdate{
			NameZH:              coerce.String(p.NameZH),
			NameEN:              coerce.String(p.NameEN),
			RelatedOrganization: coerce.String(p.RelatedOrganization),
			EstimatedYOB:        coerce.Int(p.EstimatedYOB),
			Gender:              coerce.String(p.Gender),
			FCUUID:              coerce.String(p.FCUUID),
			Description:         coerce.String(p.Description),
		},
	}
}

// constituencyVariables builds the UpdateConstituency variables. The
// description is sent exactly as read.
func constituencyVariables(c *models.Constituency) models.ConstituencyVariables {
	return models.ConstituencyVariables{
		ConstituencyID: coerce.Int(c.ID),
		UpdateInput: models.ConstituencyUpdate{
			Description: c.Description,
		},
	}
}

// findPerson returns the first person whose id equals personID.
func findPerson(people []models.Person, personID string) (*models.Person, bool) {
	if personID == "" {
		return nil, false
	}
	for i := range people {
		if people[i].ID == personID {
			return &people[i], true
		}
	}
	return nil, false
}
