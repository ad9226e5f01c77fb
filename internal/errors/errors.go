// Ballotsync - Election Reference Data Synchronization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ballotsync

// Package errors provides the coded error taxonomy shared by the sync
// pipeline.
//
// Invocation-level errors (InvalidRange, EmptySourceData, SourceUnavailable,
// ConfigInvalid) abort a batch. Row-level errors (PersonNotFound,
// MutationFailed) are recorded in the batch report and never escape a row.
//
//	if errors.Is(err, errors.ErrInvalidRange) {
//	    ...
//	}
//
//	var mErr *errors.MutationError
//	if errors.As(err, &mErr) {
//	    log.Str("body", mErr.Body)
//	}
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
var (
	Is = errors.Is
	As = errors.As
)

// Code represents a machine-readable error code.
type Code string

// Error codes used throughout the application.
const (
	CodeInvalidRange      Code = "INVALID_RANGE"
	CodeEmptySourceData   Code = "EMPTY_SOURCE_DATA"
	CodePersonNotFound    Code = "PERSON_NOT_FOUND"
	CodeMutationFailed    Code = "MUTATION_FAILED"
	CodeSourceUnavailable Code = "SOURCE_UNAVAILABLE"
	CodeConfigInvalid     Code = "CONFIG_INVALID"
)

// Error is a domain error with a code, message, and optional cause.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target matches this error.
// Matches if target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors for use with errors.Is().
var (
	ErrInvalidRange      = &Error{Code: CodeInvalidRange, Message: "invalid id range"}
	ErrEmptySourceData   = &Error{Code: CodeEmptySourceData, Message: "empty source data"}
	ErrPersonNotFound    = &Error{Code: CodePersonNotFound, Message: "person not found"}
	ErrMutationFailed    = &Error{Code: CodeMutationFailed, Message: "mutation failed"}
	ErrSourceUnavailable = &Error{Code: CodeSourceUnavailable, Message: "source unavailable"}
	ErrConfigInvalid     = &Error{Code: CodeConfigInvalid, Message: "invalid configuration"}
)

// InvalidRange creates an invalid range error for the given bounds.
func InvalidRange(fromID, toID int) *Error {
	return &Error{
		Code:    CodeInvalidRange,
		Message: fmt.Sprintf("invalid id range: from_id %d, to_id %d", fromID, toID),
	}
}

// EmptySourceData creates an empty source data error naming the dataset.
func EmptySourceData(table string) *Error {
	return &Error{
		Code:    CodeEmptySourceData,
		Message: fmt.Sprintf("no rows loaded from %s", table),
	}
}

// PersonNotFound creates a person not found error.
func PersonNotFound(personID string) *Error {
	return &Error{
		Code:    CodePersonNotFound,
		Message: fmt.Sprintf("person %q not found", personID),
	}
}

// SourceUnavailable wraps a source failure.
func SourceUnavailable(err error, table string) *Error {
	return &Error{
		Code:    CodeSourceUnavailable,
		Message: fmt.Sprintf("read %s", table),
		cause:   err,
	}
}

// ConfigInvalid wraps a configuration failure.
func ConfigInvalid(err error) *Error {
	return &Error{
		Code:    CodeConfigInvalid,
		Message: "invalid configuration",
		cause:   err,
	}
}

// CodeOf returns the code of the first *Error or *MutationError in err's
// chain, or "" when there is none.
func CodeOf(err error) Code {
	var mErr *MutationError
	if errors.As(err, &mErr) {
		return CodeMutationFailed
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
