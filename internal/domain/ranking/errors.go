package ranking

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidLimit = errors.New("invalid top-n limit")
)
