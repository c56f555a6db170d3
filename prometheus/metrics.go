package prometheus

import (
	"time"

	"carmarket-service/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Catalog sync metrics
	CatalogFilesSyncedCounter  prometheus.Counter
	CatalogFilesSkippedCounter prometheus.Counter
	DocumentsImportedCounter   prometheus.Counter
	SyncDurationHistogram      prometheus.Histogram

	// Listing metrics
	ListingOperationsCounter prometheus.CounterVec
	ListingIndexOpsCounter   prometheus.CounterVec

	initialized bool
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	CatalogFilesSyncedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_files_synced_total",
			Help: "Total number of catalog files synced into the database",
		},
	)

	CatalogFilesSkippedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_files_skipped_total",
			Help: "Total number of catalog files skipped during index import",
		},
	)

	DocumentsImportedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_documents_imported_total",
			Help: "Total number of documents imported into the catalog index",
		},
	)

	SyncDurationHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    prefix + "_catalog_sync_duration_seconds",
			Help:    "Duration of full catalog syncs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
	)

	ListingOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_listing_operations_total",
			Help: "Total number of listing operations",
		},
		[]string{"operation"},
	)

	ListingIndexOpsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_listing_index_operations_total",
			Help: "Total number of listing index mirror operations",
		},
		[]string{"operation", "outcome"},
	)

	initialized = true
}

// RecordCatalogFileSynced increments the synced-files counter
func RecordCatalogFileSynced() {
	if !initialized {
		return
	}
	CatalogFilesSyncedCounter.Inc()
}

// RecordCatalogFileSkipped increments the skipped-files counter
func RecordCatalogFileSkipped() {
	if !initialized {
		return
	}
	CatalogFilesSkippedCounter.Inc()
}

// RecordDocumentsImported adds to the imported-documents counter
func RecordDocumentsImported(count int) {
	if !initialized {
		return
	}
	DocumentsImportedCounter.Add(float64(count))
}

// ObserveSyncDuration records the duration of a full catalog sync
func ObserveSyncDuration(d time.Duration) {
	if !initialized {
		return
	}
	SyncDurationHistogram.Observe(d.Seconds())
}

// RecordListingOperation increments the counter for listing operations
func RecordListingOperation(operation string) {
	if !initialized {
		return
	}
	ListingOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordListingIndexOp increments the counter for index mirror operations
func RecordListingIndexOp(operation, outcome string) {
	if !initialized {
		return
	}
	ListingIndexOpsCounter.WithLabelValues(operation, outcome).Inc()
}
