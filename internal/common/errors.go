// Package common defines shared sentinel errors and small helpers used across
// the client layers of SnapCryptor. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Controller-level errors.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")

	// Validation errors, detected before any network activity.
	ErrNoFilesSelected = errors.New("no files selected")
	ErrNoPassword      = errors.New("no password")

	// Input errors.
	ErrIsDirectory      = errors.New("is a directory")
	ErrUnknownOption    = errors.New("unknown option")
	ErrUnknownOperation = errors.New("unknown operation")
)
