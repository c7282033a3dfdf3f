package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	consensusQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "consensus",
		Name:      "queries_total",
		Help:      "Count of aggregated view computations.",
	}, []string{"view", "status"})

	consensusQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "consensus",
		Name:      "query_duration_seconds",
		Help:      "Duration of computing an aggregated view.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"view", "status"})

	consensusQuerySize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "consensus",
		Name:      "query_packages",
		Help:      "Number of data packages scanned per view computation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"view"})

	consensusCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "consensus",
		Name:      "cache_requests_total",
		Help:      "Count of view cache lookups by outcome.",
	}, []string{"view", "outcome"})
)

// Consensus tracks metrics for aggregated view queries and their cache.
type Consensus struct{}

// NewConsensus constructs a Consensus metrics collector.
func NewConsensus() *Consensus {
	return &Consensus{}
}

// ObserveQuery records a view computation over the stored window.
func (m Consensus) ObserveQuery(view string, err error, packages int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	consensusQueriesTotal.WithLabelValues(view, status).Inc()
	consensusQueryDuration.WithLabelValues(view, status).Observe(time.Since(started).Seconds())
	consensusQuerySize.WithLabelValues(view).Observe(float64(packages))
}

// ObserveCache records a cache hit or miss for a view lookup.
func (m Consensus) ObserveCache(view string, hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	consensusCacheTotal.WithLabelValues(view, outcome).Inc()
}
