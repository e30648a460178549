package ingest

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrDataAccess covers missing or unreadable dataset files.
	ErrDataAccess = errors.New("dataset unreadable")
	// ErrMissingColumns means the header lacks one or more required columns.
	ErrMissingColumns = errors.New("missing required columns")
)
