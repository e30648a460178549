// Package repository defines the item score store interface and errors.
package repository

import (
	"context"

	"github.com/okian/suisen/internal/domain/model"
)

// Store accumulates ratings and exposes per-item aggregates.
type Store interface {
	// Add records one valid rating for its item.
	Add(ctx context.Context, r model.Rating) error

	// Scores returns the aggregate (mean, count) for every item with at
	// least one rating. Order is unspecified; the ranking stage sorts.
	Scores(ctx context.Context) ([]model.ItemScore, error)

	// Count returns the number of distinct items tracked.
	Count(ctx context.Context) int

	// Close releases the store. Subsequent use returns ErrClosed.
	Close() error
}
