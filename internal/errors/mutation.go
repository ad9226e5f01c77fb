// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

package errors

import (
	"fmt"
)

// MutationError reports a mutation that did not satisfy the success check.
// Body holds the raw response body (possibly truncated) when one was read.
type MutationError struct {
	Operation  string
	StatusCode int
	Body       string
	cause      error
}

// NewMutationError creates a MutationError. cause may be nil.
func NewMutationError(operation string, statusCode int, body string, cause error) *MutationError {
	return &MutationError{
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *MutationError) Error() string {
	msg := fmt.Sprintf("mutation %s failed", e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MutationError) Unwrap() error {
	return e.cause
}

// Is matches ErrMutationFailed.
func (e *MutationError) Is(target error) bool {
	var t *Error
	if As(target, &t) {
		return t.Code == CodeMutationFailed
	}
	return false
}
