// Package metrics provides Prometheus metrics for the suisen pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline stage label values used with RecordStageDuration.
const (
	StageIngest = "ingest"
	StageClean  = "clean"
	StageRank   = "rank"
)

// Manager owns all Prometheus metrics for the pipeline.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	enabled   bool
	registry  prometheus.Registerer

	rowsIngested  prometheus.Counter
	rowsKept      prometheus.Counter
	rowsDropped   *prometheus.CounterVec
	rowsClipped   prometheus.Counter
	distinctItems prometheus.Gauge
	itemsRanked   prometheus.Gauge
	stageDuration *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
	lastRunUnix   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go runtime collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "suisen",
		subsystem: "pipeline",
		buckets:   prometheus.DefBuckets,
		enabled:   true,
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.rowsIngested = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_ingested_total",
		Help:      "Raw rows read from the ratings dataset.",
	})
	m.rowsKept = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_kept_total",
		Help:      "Rows that survived cleaning.",
	})
	m.rowsDropped = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_dropped_total",
		Help:      "Rows dropped during cleaning, by reason.",
	}, []string{"reason"})
	m.rowsClipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_clipped_total",
		Help:      "Ratings clipped into the configured bounds.",
	})
	m.distinctItems = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "distinct_items",
		Help:      "Distinct items with at least one valid rating.",
	})
	m.itemsRanked = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "items_ranked",
		Help:      "Items in the last recommendation list.",
	})
	m.stageDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of each pipeline stage.",
		Buckets:   m.buckets,
	}, []string{"stage"})
	m.runsTotal = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Completed pipeline runs, by outcome.",
	}, []string{"outcome"})
	m.lastRunUnix = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time of the last completed run.",
	})
}

// Package-level helpers against the global manager.

// RecordRowsIngested adds n to the ingested row counter.
func RecordRowsIngested(n int) {
	if globalManager.enabled {
		globalManager.rowsIngested.Add(float64(n))
	}
}

// RecordRowsKept adds n to the kept row counter.
func RecordRowsKept(n int) {
	if globalManager.enabled {
		globalManager.rowsKept.Add(float64(n))
	}
}

// RecordRowsDropped adds n dropped rows under the given reason.
func RecordRowsDropped(reason string, n int) {
	if globalManager.enabled {
		globalManager.rowsDropped.WithLabelValues(reason).Add(float64(n))
	}
}

// RecordRowsClipped adds n to the clipped ratings counter.
func RecordRowsClipped(n int) {
	if globalManager.enabled {
		globalManager.rowsClipped.Add(float64(n))
	}
}

// UpdateDistinctItems sets the distinct item gauge.
func UpdateDistinctItems(n int) {
	if globalManager.enabled {
		globalManager.distinctItems.Set(float64(n))
	}
}

// UpdateItemsRanked sets the ranked item gauge.
func UpdateItemsRanked(n int) {
	if globalManager.enabled {
		globalManager.itemsRanked.Set(float64(n))
	}
}

// RecordStageDuration observes one stage duration.
func RecordStageDuration(stage string, d time.Duration) {
	if globalManager.enabled {
		globalManager.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
	}
}

// RecordRunCompleted counts a successful run and stamps its time.
func RecordRunCompleted() {
	if globalManager.enabled {
		globalManager.runsTotal.WithLabelValues("ok").Inc()
		globalManager.lastRunUnix.SetToCurrentTime()
	}
}

// RecordRunFailed counts a failed run.
func RecordRunFailed() {
	if globalManager.enabled {
		globalManager.runsTotal.WithLabelValues("error").Inc()
	}
}

// GetRegistry returns the custom registry for HTTP exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
