// Package ranking computes the top-N items by mean rating.
//
// Ordering is total and deterministic: mean rating descending, then support
// count descending, then item id ascending. The count tie-break follows the
// original pipeline's behavior; the item-id key makes equal (mean, count)
// pairs stable across runs.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/okian/suisen/internal/domain/model"
)

// defaultMinSupport keeps every rated item eligible; raise it to require a
// minimum number of ratings per item.
const defaultMinSupport = 1

// Ranker produces recommendation lists from item aggregates.
type Ranker struct {
	minSupport int
}

// New creates a Ranker with configuration options.
func New(opts ...Option) *Ranker {
	r := &Ranker{minSupport: defaultMinSupport}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MinSupport returns the configured support threshold.
func (r *Ranker) MinSupport() int {
	return r.minSupport
}

// Rank returns the top n items by mean rating. Items with fewer than the
// minimum support count are excluded. The result is shorter than n when
// fewer items qualify; an empty input yields an empty list, not an error.
func (r *Ranker) Rank(ctx context.Context, scores []model.ItemScore, n int) ([]model.Recommendation, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eligible := make([]model.ItemScore, 0, len(scores))
	for _, s := range scores {
		if s.Count >= r.minSupport {
			eligible = append(eligible, s)
		}
	}

	sort.Slice(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.Mean != b.Mean {
			return a.Mean > b.Mean
		}
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ItemID < b.ItemID
	})

	if n > len(eligible) {
		n = len(eligible)
	}
	top := make([]model.Recommendation, n)
	for i := 0; i < n; i++ {
		top[i] = model.Recommendation{
			Rank:       i + 1,
			ItemID:     eligible[i].ItemID,
			MeanRating: eligible[i].Mean,
			Ratings:    eligible[i].Count,
		}
	}
	return top, nil
}
