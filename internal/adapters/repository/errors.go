package repository

import "errors"

// Sentinel kinds for score store errors.
var (
	ErrClosed = errors.New("store closed")
)
