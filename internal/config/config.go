// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer file and environment overrides in Load.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Default dataset location, relative to the working directory.
const defaultDatasetPath = "data/sample_ratings.csv"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// DatasetPath points at the delimited ratings file.
	DatasetPath string `koanf:"dataset_path" validate:"required"`

	// TopN is the length of the recommendation list.
	TopN int `koanf:"top_n" validate:"gte=1"`

	// MinRatings is the minimum support an item needs to be ranked.
	MinRatings int `koanf:"min_ratings" validate:"gte=1"`

	// RatingMin and RatingMax bound the rating scale; out-of-range values
	// are clipped during cleaning.
	RatingMin float64 `koanf:"rating_min"`
	RatingMax float64 `koanf:"rating_max" validate:"gtfield=RatingMin"`

	// DropDuplicates drops repeated (user, item) rows, first occurrence wins.
	DropDuplicates bool `koanf:"drop_duplicates"`

	// OutputFormat selects the stdout rendering: text or json.
	OutputFormat string `koanf:"output_format" validate:"oneof=text json"`

	// MetricsAddr, when non-empty, serves Prometheus metrics over HTTP
	// for the duration of the run, e.g. ":9090".
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		DatasetPath:  defaultDatasetPath,
		TopN:         5,
		MinRatings:   1,
		RatingMin:    0,
		RatingMax:    10,
		OutputFormat: "text",
	}
}
