package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/suisen/internal/dataprep"
	"github.com/okian/suisen/pkg/logger"
)

// Default configuration constants.
const (
	defaultRawDir  = "data/raw"
	defaultOutDir  = "data/processed"
	defaultSampleN = 200_000
	defaultThreads = 4
)

func main() {
	var (
		rawDir          = flag.String("raw-dir", defaultRawDir, "Directory scanned for raw CSV files")
		outDir          = flag.String("out-dir", defaultOutDir, "Directory for normalized outputs")
		ratingsCSV      = flag.String("ratings-csv", "", "Explicit path to the ratings CSV, skips discovery")
		dropNonPositive = flag.Bool("drop-nonpositive", false, "Drop rating <= 0 (common for unrated/-1/0 markers)")
		sampleN         = flag.Int("sample-n", defaultSampleN, "Rows to write to ratings_sample.parquet")
		threads         = flag.Int("threads", defaultThreads, "DuckDB thread count")
		verbose         = flag.Bool("verbose", false, "Enable verbose logging")
		help            = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		dataprep.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := &dataprep.Config{
		RawDir:          *rawDir,
		OutDir:          *outDir,
		RatingsCSV:      *ratingsCSV,
		DropNonPositive: *dropNonPositive,
		SampleN:         *sampleN,
		Threads:         *threads,
		Verbose:         *verbose,
	}

	if err := dataprep.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("prepare-data failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
