// Package ranking computes the top-N items by mean rating.
package ranking

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithMinSupport sets the minimum number of ratings an item needs to be
// eligible for ranking. Values below 1 are ignored.
func WithMinSupport(minSupport int) Option {
	return func(r *Ranker) {
		if minSupport >= 1 {
			r.minSupport = minSupport
		}
	}
}
