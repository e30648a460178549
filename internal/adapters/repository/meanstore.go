package repository

import (
	"context"
	"sync"

	"github.com/okian/suisen/internal/domain/model"
)

// accumulator holds the running aggregate for one item.
// Mean is computed lazily as sum/count so repeated Adds stay O(1).
type accumulator struct {
	sum   float64
	count int
}

// MeanStore is an in-memory Store keyed by item id.
type MeanStore struct {
	mu       sync.RWMutex
	items    map[int64]*accumulator
	closed   bool
	capacity int
}

// NewMeanStore creates an empty MeanStore with configuration options.
func NewMeanStore(opts ...Option) *MeanStore {
	s := &MeanStore{}
	for _, opt := range opts {
		opt(s)
	}
	s.items = make(map[int64]*accumulator, s.capacity)
	return s
}

// Add records one rating for its item.
func (s *MeanStore) Add(_ context.Context, r model.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	acc, ok := s.items[r.ItemID]
	if !ok {
		acc = &accumulator{}
		s.items[r.ItemID] = acc
	}
	acc.sum += r.Value
	acc.count++
	return nil
}

// Scores returns the aggregate for every item with at least one rating.
func (s *MeanStore) Scores(_ context.Context) ([]model.ItemScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	scores := make([]model.ItemScore, 0, len(s.items))
	for id, acc := range s.items {
		scores = append(scores, model.ItemScore{
			ItemID: id,
			Mean:   acc.sum / float64(acc.count),
			Count:  acc.count,
		})
	}
	return scores, nil
}

// Count returns the number of distinct items tracked.
func (s *MeanStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close releases the store. Safe to call more than once.
func (s *MeanStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.items = nil
	return nil
}
