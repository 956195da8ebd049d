package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	datasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load cycles by resolved status",
		},
		[]string{"status"},
	)

	datasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Dataset load cycle duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	recordsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_records_dropped_total",
			Help: "Total number of raw records skipped during normalization",
		},
	)

	cacheWriteFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_cache_write_failures_total",
			Help: "Total number of best-effort cache writes that failed",
		},
	)
)

// RecordLoad records one completed load cycle.
func RecordLoad(status string, duration time.Duration) {
	datasetLoadsTotal.WithLabelValues(status).Inc()
	datasetLoadDuration.Observe(duration.Seconds())
}

// RecordDroppedRecord records one skipped raw record.
func RecordDroppedRecord() {
	recordsDroppedTotal.Inc()
}

// RecordCacheWriteFailure records one swallowed cache write error.
func RecordCacheWriteFailure() {
	cacheWriteFailuresTotal.Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
