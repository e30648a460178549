// Package cleaning coerces raw rating rows into typed, validated records.
//
// Rows with missing or non-numeric identifiers or ratings are dropped, never
// fixed up; valid ratings are clipped into the configured bounds. The stage
// is a pure transformation: no I/O, no retained state between calls.
package cleaning

import (
	"context"
	"math"
	"strconv"

	"github.com/okian/suisen/internal/domain/dedupe"
	"github.com/okian/suisen/internal/domain/model"
)

// Default rating bounds, matching the 0-10 scale of the source dataset.
const (
	defaultMinRating = 0
	defaultMaxRating = 10
)

// DropReason classifies why a row was excluded from the cleaned table.
type DropReason string

// Drop reasons reported per row.
const (
	DropBadUserID DropReason = "bad_user_id"
	DropBadItemID DropReason = "bad_item_id"
	DropBadRating DropReason = "bad_rating"
	DropDuplicate DropReason = "duplicate"
)

// Report summarizes one cleaning pass.
type Report struct {
	Input   int
	Kept    int
	Clipped int
	Dropped map[DropReason]int
}

// DroppedTotal returns the number of rows excluded for any reason.
func (r Report) DroppedTotal() int {
	total := 0
	for _, n := range r.Dropped {
		total += n
	}
	return total
}

// Cleaner holds the cleaning configuration.
type Cleaner struct {
	minRating      float64
	maxRating      float64
	dropDuplicates bool
}

// New creates a Cleaner with configuration options.
func New(opts ...Option) *Cleaner {
	c := &Cleaner{
		minRating: defaultMinRating,
		maxRating: defaultMaxRating,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean converts raw rows into typed ratings, dropping invalid rows and
// clipping ratings into the configured bounds. Input order is preserved.
func (c *Cleaner) Clean(ctx context.Context, rows []model.RawRating) ([]model.Rating, Report) {
	report := Report{
		Input:   len(rows),
		Dropped: make(map[DropReason]int),
	}

	var deduper dedupe.Deduper
	if c.dropDuplicates {
		deduper = dedupe.NewInMemoryDeduper()
	}

	cleaned := make([]model.Rating, 0, len(rows))
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}

		userID, ok := parseID(row.UserID)
		if !ok {
			report.Dropped[DropBadUserID]++
			continue
		}
		itemID, ok := parseID(row.ItemID)
		if !ok {
			report.Dropped[DropBadItemID]++
			continue
		}
		value, ok := parseRating(row.Rating)
		if !ok {
			report.Dropped[DropBadRating]++
			continue
		}

		if deduper != nil {
			key := strconv.FormatInt(userID, 10) + ":" + strconv.FormatInt(itemID, 10)
			if deduper.SeenAndRecord(ctx, key) {
				report.Dropped[DropDuplicate]++
				continue
			}
		}

		if clipped := clip(value, c.minRating, c.maxRating); clipped != value {
			value = clipped
			report.Clipped++
		}

		cleaned = append(cleaned, model.Rating{UserID: userID, ItemID: itemID, Value: value})
	}
	report.Kept = len(cleaned)
	return cleaned, report
}

// parseID accepts integer identifiers, including integer-valued floats such
// as "1.0" that show up in exports from dataframe tooling.
func parseID(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// parseRating accepts finite numeric values only.
func parseRating(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
