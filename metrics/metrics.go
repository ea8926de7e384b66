// ABOUTME: This file implements Prometheus metrics for ingestion monitoring
// ABOUTME: Per-source counters expose which feeds contribute and which fail
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// IngestionMetrics holds the collectors the pipeline records into. Failures
// never surface to the scheduler, so these counters are the primary signal
// that a source has gone quiet.
type IngestionMetrics struct {
	RunsTotal        prometheus.Counter
	RunDuration      prometheus.Histogram
	ItemsFetched     *prometheus.CounterVec
	ArticlesInserted *prometheus.CounterVec
	Duplicates       *prometheus.CounterVec
	ItemsFiltered    *prometheus.CounterVec
	SourceFailures   *prometheus.CounterVec
	StoreErrors      *prometheus.CounterVec
}

// NewIngestionMetrics registers the ingestion collectors with reg.
func NewIngestionMetrics(reg prometheus.Registerer) *IngestionMetrics {
	factory := promauto.With(reg)

	return &IngestionMetrics{
		RunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "ingestion_runs_total",
			Help: "Number of completed ingestion runs.",
		}),
		RunDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ingestion_run_duration_seconds",
			Help:    "Wall-clock duration of one ingestion run.",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		ItemsFetched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_items_fetched_total",
			Help: "Raw items emitted by each source adapter.",
		}, []string{"source"}),
		ArticlesInserted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_articles_inserted_total",
			Help: "Novel articles persisted per source.",
		}, []string{"source"}),
		Duplicates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_duplicates_total",
			Help: "Candidates discarded by the deduplication gate per source.",
		}, []string{"source"}),
		ItemsFiltered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_items_filtered_total",
			Help: "Items dropped by per-item validation per source.",
		}, []string{"source"}),
		SourceFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_source_failures_total",
			Help: "Fetches that failed at source granularity.",
		}, []string{"source"}),
		StoreErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_store_errors_total",
			Help: "Store lookups or inserts that failed per source.",
		}, []string{"source"}),
	}
}
