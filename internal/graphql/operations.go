// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package graphql

// Operation is a named GraphQL mutation and the data field that carries its
// result.
type Operation struct {
	Name      string
	Document  string
	ResultKey string
}

// UpdatePerson sets the editable columns of one person.
var UpdatePerson = Operation{
	Name:      "UpdatePerson",
	ResultKey: "update_dcd_people",
	Document: `mutation UpdatePerson($personId: Int!, $updateInput: dcd_people_set_input!) {
  update_dcd_people(where: {id: {_eq: $personId}}, _set: $updateInput) {
    affected_rows
  }
}`,
}

// UpdateCandidate sets the editable columns of one candidate and replaces
// its tag set.
var UpdateCandidate = Operation{
	Name:      "UpdateCandidate",
	ResultKey: "update_dcd_candidates",
	Document: `mutation UpdateCandidate($candidateId: Int!, $updateInput: dcd_candidates_set_input!, $tags: [dcd_candidate_tags_insert_input!]!) {
  update_dcd_candidates(where: {id: {_eq: $candidateId}}, _set: $updateInput) {
    affected_rows
  }
  delete_dcd_candidate_tags(where: {candidate_id: {_eq: $candidateId}}) {
    affected_rows
  }
  insert_dcd_candidate_tags(objects: $tags) {
    affected_rows
  }
}`,
}

// UpdateConstituency sets the description of one constituency.
var UpdateConstituency = Operation{
	Name:      "UpdateConstituency",
	ResultKey: "update_dcd_constituencies",
	Document: `mutation UpdateConstituency($constituencyId: Int!, $updateInput: dcd_constituencies_set_input!) {
  update_dcd_constituencies(where: {id: {_eq: $constituencyId}}, _set: $updateInput) {
    affected_rows
  }
}`,
}
