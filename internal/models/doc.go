// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package models defines the rows read from the spreadsheet and the variables
sent with each GraphQL mutation.

Row Models:

  - Person, Candidate, Constituency: raw cell strings addressed by the fixed
    column layout in columns.go. Short rows yield empty strings.

Payload Models:

  - PersonVariables, CandidateVariables, ConstituencyVariables: the
    variables of UpdatePerson, UpdateCandidate and UpdateConstituency
  - PersonUpdate, CandidateUpdate, ConstituencyUpdate: the updateInput
    objects. Pointer fields encode as JSON null when the cell was empty.
  - Tag: one row inserted into the candidate tag table

JSON names match the backend column names exactly; the mutation documents
in internal/graphql depend on them.
*/
package models
