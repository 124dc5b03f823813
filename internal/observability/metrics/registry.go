package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Summarization metrics track end-to-end summary requests
var (
	// SummariesTotal counts summary requests by status and mode
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summaries_total",
			Help: "Total number of summary requests",
		},
		[]string{"status", "mode"},
	)

	// SummaryDuration measures the full pipeline, generation included
	SummaryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summary_duration_seconds",
			Help:    "Time taken to produce a summary",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
		},
		[]string{"mode"},
	)

	// InputWords observes the word count of summarized inputs
	InputWords = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_input_words",
			Help:    "Word count of texts submitted for summarization",
			Buckets: prometheus.ExponentialBuckets(50, 2, 10),
		},
	)

	// CompressionPercent observes how much of the input was removed
	CompressionPercent = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_compression_percent",
			Help:    "Percentage of words removed by summarization",
			Buckets: []float64{0, 25, 50, 60, 70, 80, 90, 95, 99},
		},
	)

	// GenerationsInFlight tracks generations currently holding a slot
	GenerationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summary_generations_in_flight",
			Help: "Number of generations currently running",
		},
	)

	// EmptyInputsTotal counts submissions rejected with the empty input warning
	EmptyInputsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_empty_inputs_total",
			Help: "Total number of submissions without any text",
		},
	)
)

// Input metrics track text extraction and URL fetching
var (
	// ExtractionsTotal counts text extractions by input kind and status
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "text_extractions_total",
			Help: "Total number of text extractions by input kind",
		},
		[]string{"kind", "status"},
	)

	// ContentFetchAttemptsTotal counts article URL fetches by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of article URL fetch attempts",
		},
		[]string{"result"},
	)

	// ContentFetchDuration measures article URL fetch latency
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Article URL fetch duration in seconds",
			Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
		},
	)
)

// Download store metrics
var (
	// DownloadsStored tracks entries currently held for download
	DownloadsStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "summary_downloads_stored",
			Help: "Number of summaries currently available for download",
		},
	)

	// DownloadsPurgedTotal counts expired entries removed by the purge job
	DownloadsPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_downloads_purged_total",
			Help: "Total number of expired summaries purged",
		},
	)

	// DownloadsServedTotal counts download requests by result
	DownloadsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summary_downloads_served_total",
			Help: "Total number of summary.txt download requests",
		},
		[]string{"result"},
	)
)
