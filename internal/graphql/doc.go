// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

/*
Package graphql sends the named update mutations to a Hasura-style GraphQL
endpoint.

Mutator is the seam used by the sync drivers. Three implementations exist:
  - Client POSTs the mutation with resty and applies the success check.
  - BreakerMutator wraps another Mutator with a sony/gobreaker circuit breaker.
  - DryRunMutator logs the mutation and sends nothing.

# Success Check

A mutation succeeds only when the endpoint answers HTTP 200, the body carries
no GraphQL errors, and data.<result key> is truthy: true, a non-zero number,
a non-empty string, or an object. An object with an affected_rows field must
report at least one affected row. Anything else is an
errors.MutationError carrying the operation name, the HTTP status and the
first 64KB of the body.

Requests are never retried.
*/
package graphql
