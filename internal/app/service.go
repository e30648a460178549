// Package service runs the ratings pipeline end to end:
// ingest -> clean -> aggregate -> rank.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	ingest "github.com/okian/suisen/internal/adapters/ingest"
	repository "github.com/okian/suisen/internal/adapters/repository"
	"github.com/okian/suisen/internal/domain/cleaning"
	"github.com/okian/suisen/internal/domain/model"
	"github.com/okian/suisen/internal/domain/ranking"
	"github.com/okian/suisen/pkg/logger"
	"github.com/okian/suisen/pkg/metrics"
)

// Default pipeline configuration constants.
const (
	defaultTopN      = 5
	defaultRatingMin = 0
	defaultRatingMax = 10
)

// Result captures the output of one pipeline run.
type Result struct {
	RunID           string
	Recommendations []model.Recommendation
	Cleaning        cleaning.Report
	DistinctItems   int
	IngestDuration  time.Duration
	CleanDuration   time.Duration
	RankDuration    time.Duration
}

// Service executes the ratings pipeline. The run is strictly sequential:
// each stage consumes the previous stage's output, no shared mutable state.
type Service struct {
	datasetPath    string
	topN           int
	minSupport     int
	ratingMin      float64
	ratingMax      float64
	dropDuplicates bool
	comma          rune

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDatasetPath sets the ratings file location.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.datasetPath = path
		}
	}
}

// WithTopN sets the recommendation list length.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithMinSupport sets the minimum ratings an item needs to be ranked.
func WithMinSupport(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.minSupport = n
		}
	}
}

// WithRatingBounds sets the clipping range for rating values.
func WithRatingBounds(minRating, maxRating float64) Option {
	return func(s *Service) {
		if maxRating > minRating {
			s.ratingMin = minRating
			s.ratingMax = maxRating
		}
	}
}

// WithDropDuplicates enables dropping repeated (user, item) rows.
func WithDropDuplicates(drop bool) Option {
	return func(s *Service) {
		s.dropDuplicates = drop
	}
}

// WithComma sets the dataset field delimiter.
func WithComma(comma rune) Option {
	return func(s *Service) {
		if comma != 0 {
			s.comma = comma
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		topN:       defaultTopN,
		minSupport: 1,
		ratingMin:  defaultRatingMin,
		ratingMax:  defaultRatingMax,
		comma:      ',',
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one full pipeline pass. An empty or fully-invalid dataset
// yields an empty recommendation list, not an error; everything else
// propagates and fails the run.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	log := s.logger
	if log == nil {
		log = logger.Get()
	}

	result := &Result{RunID: uuid.NewString()}
	log.Info(ctx, "starting pipeline run",
		logger.String("run_id", result.RunID),
		logger.String("dataset", s.datasetPath),
		logger.Int("top_n", s.topN),
	)

	// Ingest.
	start := time.Now()
	reader := ingest.NewReader(ingest.WithComma(s.comma))
	rows, err := reader.ReadFile(ctx, s.datasetPath)
	result.IngestDuration = time.Since(start)
	metrics.RecordStageDuration(metrics.StageIngest, result.IngestDuration)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, fmt.Errorf("ingest: %w", err)
	}
	metrics.RecordRowsIngested(len(rows))
	log.Info(ctx, "dataset ingested",
		logger.Int("rows", len(rows)),
		logger.Any("duration", result.IngestDuration),
	)

	// Clean.
	start = time.Now()
	cleaner := cleaning.New(
		cleaning.WithRatingBounds(s.ratingMin, s.ratingMax),
		cleaning.WithDropDuplicates(s.dropDuplicates),
	)
	ratings, report := cleaner.Clean(ctx, rows)
	result.CleanDuration = time.Since(start)
	result.Cleaning = report
	metrics.RecordStageDuration(metrics.StageClean, result.CleanDuration)
	metrics.RecordRowsKept(report.Kept)
	metrics.RecordRowsClipped(report.Clipped)
	for reason, n := range report.Dropped {
		metrics.RecordRowsDropped(string(reason), n)
	}
	if report.DroppedTotal() > 0 {
		log.Warn(ctx, "rows dropped during cleaning",
			logger.Int("dropped", report.DroppedTotal()),
			logger.Int("kept", report.Kept),
		)
	}

	// Aggregate and rank.
	start = time.Now()
	store := repository.NewMeanStore(repository.WithCapacityHint(len(ratings)))
	defer store.Close() //nolint:errcheck // in-memory store
	for _, r := range ratings {
		if err := store.Add(ctx, r); err != nil {
			metrics.RecordRunFailed()
			return nil, fmt.Errorf("aggregate: %w", err)
		}
	}
	result.DistinctItems = store.Count(ctx)
	metrics.UpdateDistinctItems(result.DistinctItems)

	scores, err := store.Scores(ctx)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	ranker := ranking.New(ranking.WithMinSupport(s.minSupport))
	top, err := ranker.Rank(ctx, scores, s.topN)
	result.RankDuration = time.Since(start)
	metrics.RecordStageDuration(metrics.StageRank, result.RankDuration)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, fmt.Errorf("rank: %w", err)
	}
	result.Recommendations = top
	metrics.UpdateItemsRanked(len(top))
	metrics.RecordRunCompleted()

	log.Info(ctx, "pipeline run finished",
		logger.String("run_id", result.RunID),
		logger.Int("distinct_items", result.DistinctItems),
		logger.Int("recommendations", len(top)),
	)
	return result, nil
}
