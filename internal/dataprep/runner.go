package dataprep

import (
	"context"

	"github.com/okian/suisen/pkg/logger"
)

// Run executes one preparation pass: find (or inspect) the ratings CSV,
// then normalize it into the out directory.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Named("dataprep")

	var (
		cand Candidate
		err  error
	)
	if cfg.RatingsCSV != "" {
		cand, err = Inspect(cfg.RatingsCSV)
	} else {
		cand, err = FindRatingsCSV(ctx, cfg.RawDir)
	}
	if err != nil {
		return err
	}
	log.Info(ctx, "ratings candidate selected",
		logger.String("path", cand.Path),
		logger.Int64("size_bytes", cand.Size),
		logger.Any("mapping", cand.Mapping),
	)

	rows, err := Normalize(ctx, cand, cfg)
	if err != nil {
		return err
	}
	log.Info(ctx, "normalized dataset written",
		logger.String("out_dir", cfg.OutDir),
		logger.Int64("rows", rows),
		logger.Int("sample_rows", cfg.SampleN),
	)
	return nil
}
