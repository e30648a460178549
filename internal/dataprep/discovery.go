// Package dataprep locates raw ratings dumps and normalizes them into the
// canonical (user_id, item_id, rating) layout consumed by the pipeline.
package dataprep

import (
	"context"
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Candidate is a CSV file considered as the ratings source.
type Candidate struct {
	Path    string
	Size    int64
	Score   int               // how many canonical columns were mapped
	Mapping map[string]string // canonical column -> raw header name
}

// readHeader returns the first record of a CSV file, lowercased and trimmed.
func readHeader(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	for i, h := range header {
		header[i] = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"'`))
	}
	return header, nil
}

// scoreHeader counts how many canonical columns the header can satisfy and
// returns the column mapping. The first alias present wins.
func scoreHeader(header []string, aliases map[string][]string) (int, map[string]string) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	mapping := make(map[string]string, len(aliases))
	score := 0
	for canon, names := range aliases {
		for _, name := range names {
			if present[name] {
				mapping[canon] = name
				score++
				break
			}
		}
	}
	return score, mapping
}

// Inspect builds a Candidate for an explicitly chosen ratings file.
func Inspect(path string) (Candidate, error) {
	header, err := readHeader(path)
	if err != nil {
		return Candidate{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	score, mapping := scoreHeader(header, ratingsAliases)
	if score < requiredScore {
		return Candidate{}, fmt.Errorf("%w: %s maps only %v", ErrMissingColumns, path, mapping)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{Path: path, Size: info.Size(), Score: score, Mapping: mapping}, nil
}

// FindRatingsCSV scans rawDir recursively and picks the best ratings
// candidate by (mapped columns, file size). Files whose header cannot be
// read are skipped. The winner must map all required columns.
func FindRatingsCSV(ctx context.Context, rawDir string) (Candidate, error) {
	var paths []string
	err := filepath.WalkDir(rawDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return Candidate{}, fmt.Errorf("scan %s: %w", rawDir, err)
	}
	if len(paths) == 0 {
		return Candidate{}, fmt.Errorf("%w: no .csv files under %s", ErrNoCandidates, rawDir)
	}
	sort.Strings(paths)

	var best *Candidate
	for _, path := range paths {
		header, err := readHeader(path)
		if err != nil {
			continue
		}
		score, mapping := scoreHeader(header, ratingsAliases)
		if score == 0 {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		cand := Candidate{Path: path, Size: info.Size(), Score: score, Mapping: mapping}
		if best == nil || cand.Score > best.Score ||
			(cand.Score == best.Score && cand.Size > best.Size) {
			best = &cand
		}
	}

	if best == nil {
		return Candidate{}, fmt.Errorf("%w: under %s", ErrNoCandidates, rawDir)
	}
	if best.Score < requiredScore {
		return Candidate{}, fmt.Errorf("%w: best candidate %s maps only %v",
			ErrMissingColumns, best.Path, best.Mapping)
	}
	return *best, nil
}
