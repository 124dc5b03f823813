package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GenerationMetricsRecorder records per-backend generator call metrics.
// Tests inject a fake; production uses the Prometheus implementation.
type GenerationMetricsRecorder interface {
	// RecordCall records one logical call (retries included) and its outcome:
	// "success", "failure" or "rejected" (circuit open).
	RecordCall(backend, outcome string, duration time.Duration)

	// RecordOutputTokens records the approximate token length of the output.
	RecordOutputTokens(backend string, tokens int)

	// RecordBoundsCompliance records whether the output fell inside [min_length, max_length].
	RecordBoundsCompliance(backend string, within bool)
}

// PrometheusGenerationMetrics implements GenerationMetricsRecorder.
type PrometheusGenerationMetrics struct {
	calls      *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	tokens     *prometheus.HistogramVec
	compliance *prometheus.CounterVec
}

var (
	prometheusMetricsInstance *PrometheusGenerationMetrics
	prometheusMetricsOnce     sync.Once
)

// getOrCreate registers c, or returns the collector already registered under the same descriptor.
func getOrCreate[T prometheus.Collector](c T) T {
	if err := prometheus.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
	}
	return c
}

// NewPrometheusGenerationMetrics returns the process-wide recorder.
// It is a singleton so repeated construction in tests does not re-register metrics.
func NewPrometheusGenerationMetrics() *PrometheusGenerationMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusGenerationMetrics{
			calls: getOrCreate(prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "generator_calls_total",
				Help: "Generator calls by backend and outcome",
			}, []string{"backend", "outcome"})),
			duration: getOrCreate(prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "generator_call_duration_seconds",
				Help:    "Generator call latency including retries",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}, []string{"backend"})),
			tokens: getOrCreate(prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    "generator_output_tokens",
				Help:    "Approximate token length of generated summaries",
				Buckets: []float64{20, 40, 60, 80, 120, 160, 200, 260, 320},
			}, []string{"backend"})),
			compliance: getOrCreate(prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "generator_length_bounds_total",
				Help: "Generated summaries by whether they respected min/max length",
			}, []string{"backend", "within"})),
		}
	})
	return prometheusMetricsInstance
}

// RecordCall implements GenerationMetricsRecorder.
func (p *PrometheusGenerationMetrics) RecordCall(backend, outcome string, duration time.Duration) {
	p.calls.WithLabelValues(backend, outcome).Inc()
	p.duration.WithLabelValues(backend).Observe(duration.Seconds())
}

// RecordOutputTokens implements GenerationMetricsRecorder.
func (p *PrometheusGenerationMetrics) RecordOutputTokens(backend string, tokens int) {
	p.tokens.WithLabelValues(backend).Observe(float64(tokens))
}

// RecordBoundsCompliance implements GenerationMetricsRecorder.
func (p *PrometheusGenerationMetrics) RecordBoundsCompliance(backend string, within bool) {
	label := "false"
	if within {
		label = "true"
	}
	p.compliance.WithLabelValues(backend, label).Inc()
}
