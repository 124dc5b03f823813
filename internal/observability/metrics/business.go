package metrics

import (
	"time"
)

func modeLabel(threeLines bool) string {
	if threeLines {
		return "three_lines"
	}
	return "standard"
}

// RecordSummary records the outcome and latency of one summary request.
func RecordSummary(success, threeLines bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	mode := modeLabel(threeLines)
	SummariesTotal.WithLabelValues(status, mode).Inc()
	SummaryDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordSummarySize records the input size and compression of a successful summary.
func RecordSummarySize(inputWords int, compression float64) {
	InputWords.Observe(float64(inputWords))
	CompressionPercent.Observe(compression)
}

// RecordEmptyInput records a submission rejected for having no text.
func RecordEmptyInput() {
	EmptyInputsTotal.Inc()
}

// GenerationStarted and GenerationFinished bracket a generator call.
func GenerationStarted()  { GenerationsInFlight.Inc() }
func GenerationFinished() { GenerationsInFlight.Dec() }

// RecordExtraction records a text extraction for the given input kind.
func RecordExtraction(kind string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ExtractionsTotal.WithLabelValues(kind, status).Inc()
}

// RecordContentFetchSuccess records a successful article URL fetch.
func RecordContentFetchSuccess(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordContentFetchFailed records a failed article URL fetch.
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// UpdateDownloadsStored sets the number of summaries held for download.
func UpdateDownloadsStored(count int) {
	DownloadsStored.Set(float64(count))
}

// RecordDownloadsPurged adds n purged entries.
func RecordDownloadsPurged(n int) {
	DownloadsPurgedTotal.Add(float64(n))
}

// RecordDownloadServed records a download request. Result is "ok" or "not_found".
func RecordDownloadServed(result string) {
	DownloadsServedTotal.WithLabelValues(result).Inc()
}
