package dataprep

// Config holds configuration for one dataset preparation run.
type Config struct {
	RawDir          string // directory scanned for raw CSV dumps
	OutDir          string // directory for normalized outputs
	RatingsCSV      string // explicit ratings file, skips discovery
	DropNonPositive bool   // drop rating <= 0 (unrated markers like -1/0)
	SampleN         int    // rows written to ratings_sample.parquet
	Threads         int    // DuckDB thread count
	Verbose         bool   // enable debug logging
}

// Canonical output columns. Raw dumps name them all sorts of ways; the
// alias tables below map what we find to this trio.
const (
	ColUser   = "user_id"
	ColItem   = "item_id"
	ColRating = "rating"
)

// ratingsAliases maps each canonical column to accepted raw header names,
// in preference order.
var ratingsAliases = map[string][]string{
	ColUser:   {"user_id", "userid", "user", "uid", "profile", "profile_id"},
	ColItem:   {"anime_id", "item_id", "mal_id", "anime", "item", "id"},
	ColRating: {"rating", "score", "stars", "value"},
}

// requiredScore is the number of canonical columns a ratings file must map.
const requiredScore = 3
