package config

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrLoadConfig covers failures reading or decoding a config source.
	ErrLoadConfig = errors.New("load config failed")
	// ErrInvalidConfig covers values that fail struct validation.
	ErrInvalidConfig = errors.New("invalid config")
)
