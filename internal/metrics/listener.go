package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listenerMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pricecache",
		Subsystem: "listener",
		Name:      "messages_total",
		Help:      "Count of subscription messages processed.",
	}, []string{"status"})

	listenerMessageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pricecache",
		Subsystem: "listener",
		Name:      "message_duration_seconds",
		Help:      "Duration of processing a subscription message.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// Listener tracks metrics for the pub/sub ingestion listener.
type Listener struct{}

// NewListener constructs a Listener metrics collector.
func NewListener() *Listener {
	return &Listener{}
}

// ObserveMessage records processing of one received message.
func (m Listener) ObserveMessage(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	listenerMessagesTotal.WithLabelValues(status).Inc()
	listenerMessageDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
