package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingestionBulkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "ingestion",
		Name:      "bulk_total",
		Help:      "Count of bulk ingestion requests processed.",
	}, []string{"status"})

	ingestionBulkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "ingestion",
		Name:      "bulk_duration_seconds",
		Help:      "Duration of processing a bulk ingestion request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	ingestionBulkSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "ingestion",
		Name:      "bulk_size",
		Help:      "Number of data packages per bulk request.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"status"})

	ingestionInvalidSignaturesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "ingestion",
		Name:      "invalid_signatures_total",
		Help:      "Count of data packages stored with an invalid signature.",
	})
)

// Ingestion tracks metrics for the bulk ingestion pipeline.
type Ingestion struct{}

// NewIngestion constructs an Ingestion metrics collector.
func NewIngestion() *Ingestion {
	return &Ingestion{}
}

// ObserveBulk records outcome, size and duration of a bulk request.
func (m Ingestion) ObserveBulk(err error, packages int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ingestionBulkTotal.WithLabelValues(status).Inc()
	ingestionBulkDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	ingestionBulkSize.WithLabelValues(status).Observe(float64(packages))
}

// ObserveInvalidSignatures counts packages that failed signature verification.
func (m Ingestion) ObserveInvalidSignatures(count int) {
	if count <= 0 {
		return
	}
	ingestionInvalidSignaturesTotal.Add(float64(count))
}
