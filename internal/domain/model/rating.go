// Package model contains domain models passed between pipeline stages.
package model

// RawRating is a single row as read from the dataset, before any type
// coercion. Fields hold the raw cell text; empty strings mean the cell
// was missing.
type RawRating struct {
	UserID string // user identifier column
	ItemID string // item identifier column
	Rating string // rating value column
	Line   int    // 1-based line number in the source file, for diagnostics
}

// Rating is a validated, typed rating record. Immutable once created.
type Rating struct {
	UserID int64
	ItemID int64
	Value  float64
}

// ItemScore is the per-item aggregate derived from the ratings table.
// Mean is only defined for Count >= 1.
type ItemScore struct {
	ItemID int64
	Mean   float64
	Count  int
}

// Recommendation is one entry of the top-N output.
type Recommendation struct {
	Rank       int     `json:"rank"`
	ItemID     int64   `json:"item_id"`
	MeanRating float64 `json:"mean_rating"`
	Ratings    int     `json:"ratings"`
}
