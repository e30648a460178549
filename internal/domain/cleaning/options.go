// Package cleaning coerces raw rating rows into typed, validated records.
package cleaning

// Option applies a configuration option to the Cleaner.
type Option func(*Cleaner)

// WithRatingBounds sets the inclusive range ratings are clipped into.
func WithRatingBounds(minRating, maxRating float64) Option {
	return func(c *Cleaner) {
		if maxRating > minRating {
			c.minRating = minRating
			c.maxRating = maxRating
		}
	}
}

// WithDropDuplicates enables dropping repeated (user, item) rows.
// The first occurrence wins.
func WithDropDuplicates(drop bool) Option {
	return func(c *Cleaner) {
		c.dropDuplicates = drop
	}
}
