package dataprep

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoCandidates means no usable CSV was found under the raw directory.
	ErrNoCandidates = errors.New("no candidate ratings csv found")
	// ErrMissingColumns means the best candidate lacks required columns.
	ErrMissingColumns = errors.New("candidate csv missing required columns")
)
