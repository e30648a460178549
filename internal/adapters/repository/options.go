// Package repository defines the item score store interface and errors.
package repository

// Option applies a configuration option to the MeanStore.
type Option func(*MeanStore)

// WithCapacityHint pre-sizes the item map for an expected item count.
func WithCapacityHint(n int) Option {
	return func(s *MeanStore) {
		if n > 0 {
			s.capacity = n
		}
	}
}
