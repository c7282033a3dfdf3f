package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	broadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "broadcaster",
		Name:      "broadcasts_total",
		Help:      "Count of broadcast attempts per destination.",
	}, []string{"destination", "status"})

	broadcastDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "broadcaster",
		Name:      "broadcast_duration_seconds",
		Help:      "Duration of a broadcast attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"destination", "status"})

	broadcastBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "broadcaster",
		Name:      "broadcast_batch_size",
		Help:      "Number of data packages per broadcast.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"destination"})
)

// Broadcaster tracks metrics for best effort broadcast destinations.
type Broadcaster struct{}

// NewBroadcaster constructs a Broadcaster metrics collector.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Observe records a broadcast attempt to a named destination.
func (m Broadcaster) Observe(destination string, err error, packages int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if destination == "" {
		destination = "unknown"
	}
	broadcastTotal.WithLabelValues(destination, status).Inc()
	broadcastDuration.WithLabelValues(destination, status).Observe(time.Since(started).Seconds())
	broadcastBatchSize.WithLabelValues(destination).Observe(float64(packages))
}
