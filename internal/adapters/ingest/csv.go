// Package ingest reads delimited ratings datasets into raw in-memory tables.
//
// The reader resolves the required columns from the file header and returns
// every data row as-is; type coercion and row dropping happen later in the
// cleaning stage.
package ingest

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/suisen/internal/domain/model"
)

// Canonical column names. The item column also accepts item_id since the
// prepared datasets use that name.
const (
	colUser    = "user_id"
	colItem    = "anime_id"
	colItemAlt = "item_id"
	colRating  = "rating"
)

// Option applies a configuration option to the Reader.
type Option func(*Reader)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(comma rune) Option {
	return func(r *Reader) {
		if comma != 0 {
			r.comma = comma
		}
	}
}

// Reader reads ratings files into raw record tables.
type Reader struct {
	comma rune
}

// NewReader creates a Reader with configuration options.
func NewReader(opts ...Option) *Reader {
	r := &Reader{comma: ','}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// columns holds the resolved header indices for the required fields.
type columns struct {
	user   int
	item   int
	rating int
}

// ReadFile reads the ratings file at path and returns its raw rows.
// Returns ErrDataAccess when the file cannot be opened or read, and
// ErrMissingColumns when the header lacks a required column.
func (r *Reader) ReadFile(ctx context.Context, path string) ([]model.RawRating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	cr := csv.NewReader(bufio.NewReader(f))
	cr.Comma = r.comma
	cr.FieldsPerRecord = -1 // short rows become empty cells, dropped by cleaning

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file has no header", ErrMissingColumns)
		}
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var rows []model.RawRating
	line := 1 // header consumed
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
		}
		line++
		rows = append(rows, model.RawRating{
			UserID: cell(rec, cols.user),
			ItemID: cell(rec, cols.item),
			Rating: cell(rec, cols.rating),
			Line:   line,
		})
	}
	return rows, nil
}

// resolveColumns maps the required columns to their header positions.
func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.Trim(strings.TrimSpace(h), `"'`))
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}

	cols := columns{user: -1, item: -1, rating: -1}
	if i, ok := idx[colUser]; ok {
		cols.user = i
	}
	if i, ok := idx[colItem]; ok {
		cols.item = i
	} else if i, ok := idx[colItemAlt]; ok {
		cols.item = i
	}
	if i, ok := idx[colRating]; ok {
		cols.rating = i
	}

	var missing []string
	if cols.user < 0 {
		missing = append(missing, colUser)
	}
	if cols.item < 0 {
		missing = append(missing, colItem)
	}
	if cols.rating < 0 {
		missing = append(missing, colRating)
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return cols, nil
}

// cell returns the field at i, or "" when the record is too short.
func cell(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
