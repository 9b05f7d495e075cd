package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus collectors for a playback run.
type Metrics struct {
	registry            *prometheus.Registry
	framesTotal         prometheus.Counter
	framesBehindTotal   prometheus.Counter
	maskMissesTotal     prometheus.Counter
	frameFailuresTotal  prometheus.Counter
	trackLatencySeconds prometheus.Histogram
	pacingWaitSeconds   prometheus.Histogram
	sequenceFrames      prometheus.Gauge
}

// New creates and registers Prometheus metrics for the player on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	framesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "monoplay_frames_total",
		Help: "Total number of frames handed to the tracking engine",
	})
	framesBehindTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "monoplay_frames_behind_schedule_total",
		Help: "Frames whose tracking latency met or exceeded the inter-frame interval",
	})
	maskMissesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "monoplay_mask_misses_total",
		Help: "Frames whose derived mask could not be loaded",
	})
	frameFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "monoplay_frame_failures_total",
		Help: "Frames that aborted the run (load or track failure)",
	})
	trackLatencySeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "monoplay_track_latency_seconds",
		Help:    "Wall-clock duration of each tracking call",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	pacingWaitSeconds := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "monoplay_pacing_wait_seconds",
		Help:    "Time slept after each frame to hold the capture cadence",
		Buckets: prometheus.LinearBuckets(0, 0.005, 12),
	})
	sequenceFrames := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "monoplay_sequence_frames",
		Help: "Number of frames discovered in the sequence directory",
	})

	registry.MustRegister(
		framesTotal,
		framesBehindTotal,
		maskMissesTotal,
		frameFailuresTotal,
		trackLatencySeconds,
		pacingWaitSeconds,
		sequenceFrames,
	)

	return &Metrics{
		registry:            registry,
		framesTotal:         framesTotal,
		framesBehindTotal:   framesBehindTotal,
		maskMissesTotal:     maskMissesTotal,
		frameFailuresTotal:  frameFailuresTotal,
		trackLatencySeconds: trackLatencySeconds,
		pacingWaitSeconds:   pacingWaitSeconds,
		sequenceFrames:      sequenceFrames,
	}
}

// ObserveFrame records one processed frame.
func (m *Metrics) ObserveFrame(latency, wait time.Duration, behind bool) {
	m.framesTotal.Inc()
	m.trackLatencySeconds.Observe(latency.Seconds())
	m.pacingWaitSeconds.Observe(wait.Seconds())
	if behind {
		m.framesBehindTotal.Inc()
	}
}

// IncMaskMisses increments the mask miss counter.
func (m *Metrics) IncMaskMisses() {
	m.maskMissesTotal.Inc()
}

// IncFrameFailures increments the fatal frame failure counter.
func (m *Metrics) IncFrameFailures() {
	m.frameFailuresTotal.Inc()
}

// SetSequenceFrames sets the sequence length gauge.
func (m *Metrics) SetSequenceFrames(n int) {
	m.sequenceFrames.Set(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler that serves Prometheus metrics, instrumented
// with the standard promhttp scrape counters.
func (m *Metrics) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(m.registry,
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
