// Package dedupe tracks already-seen (user, item) keys during cleaning.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen keys so duplicate rating rows can be dropped.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Size returns the number of keys currently tracked.
	Size() int
}

// inMemoryDeduper implements Deduper with a plain map. When maxSize > 0 the
// tracker stops recording new keys at capacity; rows past that point are
// treated as unseen rather than silently merged.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	maxSize int
}

// NewInMemoryDeduper creates a deduper with configuration options.
// Unbounded by default; a single pipeline run holds one dataset in memory
// anyway, so the key set is at most one entry per rating row.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{})
	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}
	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		return false
	}
	d.seen[key] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
