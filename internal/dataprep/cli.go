package dataprep

import "os"

// ShowHelp prints usage information for the prepare-data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Suisen Dataset Preparation Tool
===============================

Locates a raw ratings CSV dump and normalizes it into the canonical
(user_id, item_id, rating) layout the pipeline consumes.

Usage:
  go run cmd/prepare-data/main.go [options]

Options:
  -raw-dir string
        Directory scanned for raw CSV files (default "data/raw")
  -out-dir string
        Directory for normalized outputs (default "data/processed")
  -ratings-csv string
        Explicit path to the ratings CSV, skips discovery
  -drop-nonpositive
        Drop rating <= 0 (common for unrated/-1/0 markers)
  -sample-n int
        Rows to write to ratings_sample.parquet (default 200000)
  -threads int
        DuckDB thread count (default 4)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Discover and normalize whatever is under data/raw
  go run cmd/prepare-data/main.go

  # Normalize an explicit file, dropping unrated rows
  go run cmd/prepare-data/main.go -ratings-csv data/raw/rating.csv -drop-nonpositive
`)
}
