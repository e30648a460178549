package dataprep

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb driver
)

// Output file names under the out directory.
const (
	ratingsOutName = "ratings.csv"
	sampleOutName  = "ratings_sample.parquet"
)

const outDirPermission = 0o755

// Normalize rewrites the candidate CSV into the canonical column layout
// using an in-memory DuckDB instance: a full ratings.csv plus a row-limited
// parquet sample. Returns the number of rows written to ratings.csv.
func Normalize(ctx context.Context, cand Candidate, cfg *Config) (int64, error) {
	if err := os.MkdirAll(cfg.OutDir, outDirPermission); err != nil {
		return 0, fmt.Errorf("create out dir: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return 0, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // in-memory database

	if cfg.Threads > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("SET threads = %d", cfg.Threads)); err != nil {
			return 0, fmt.Errorf("set threads: %w", err)
		}
	}

	sel := fmt.Sprintf(
		"SELECT %s AS user_id, %s AS item_id, %s AS rating FROM read_csv_auto(%s, header = true)",
		quoteIdent(cand.Mapping[ColUser]),
		quoteIdent(cand.Mapping[ColItem]),
		quoteIdent(cand.Mapping[ColRating]),
		quoteLiteral(cand.Path),
	)
	if cfg.DropNonPositive {
		sel += " WHERE rating > 0"
	}

	outCSV := filepath.Join(cfg.OutDir, ratingsOutName)
	copyCSV := fmt.Sprintf("COPY (%s) TO %s (HEADER, DELIMITER ',')", sel, quoteLiteral(outCSV))
	if _, err := db.ExecContext(ctx, copyCSV); err != nil {
		return 0, fmt.Errorf("write %s: %w", outCSV, err)
	}

	if cfg.SampleN > 0 {
		outSample := filepath.Join(cfg.OutDir, sampleOutName)
		copySample := fmt.Sprintf("COPY (%s LIMIT %d) TO %s (FORMAT PARQUET)",
			sel, cfg.SampleN, quoteLiteral(outSample))
		if _, err := db.ExecContext(ctx, copySample); err != nil {
			return 0, fmt.Errorf("write %s: %w", outSample, err)
		}
	}

	var rows int64
	countQuery := fmt.Sprintf("SELECT count(*) FROM (%s)", sel)
	if err := db.QueryRowContext(ctx, countQuery).Scan(&rows); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return rows, nil
}

// quoteIdent double-quotes a SQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// quoteLiteral single-quotes a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
