// Package metrics provides Prometheus metrics for recording lifecycle
// tracking.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordingsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "recordscreen",
		Subsystem: "recordings",
		Name:      "active",
		Help:      "Number of recordings currently in flight",
	})

	recordingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recordscreen",
		Subsystem: "recordings",
		Name:      "total",
		Help:      "Settled recordings by terminal state",
	}, []string{"state"})

	recordingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "recordscreen",
		Subsystem: "recordings",
		Name:      "duration_seconds",
		Help:      "Wall-clock duration of settled recordings",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// RecordingStarted marks a recording as in flight.
func RecordingStarted() {
	recordingsActive.Inc()
}

// RecordingSettled records a terminal state and the recording's wall-clock
// duration in seconds.
func RecordingSettled(state string, seconds float64) {
	recordingsActive.Dec()
	recordingsTotal.WithLabelValues(state).Inc()
	recordingDuration.Observe(seconds)
}
