package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSummary(t *testing.T) {
	tests := []struct {
		name       string
		success    bool
		threeLines bool
		status     string
		mode       string
	}{
		{name: "standard success", success: true, threeLines: false, status: "success", mode: "standard"},
		{name: "three lines success", success: true, threeLines: true, status: "success", mode: "three_lines"},
		{name: "standard failure", success: false, threeLines: false, status: "failure", mode: "standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := SummariesTotal.WithLabelValues(tt.status, tt.mode)
			before := testutil.ToFloat64(counter)

			RecordSummary(tt.success, tt.threeLines, 1500*time.Millisecond)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func histogramSnapshot(t *testing.T, h prometheus.Histogram) (uint64, float64) {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))
	return m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum()
}

func TestRecordSummarySize(t *testing.T) {
	wordsCount, wordsSum := histogramSnapshot(t, InputWords)
	compCount, compSum := histogramSnapshot(t, CompressionPercent)

	RecordSummarySize(0, 0)
	RecordSummarySize(1200, 87.5)
	RecordSummarySize(10, -50)

	gotCount, gotSum := histogramSnapshot(t, InputWords)
	assert.Equal(t, wordsCount+3, gotCount)
	assert.InDelta(t, wordsSum+1210, gotSum, 1e-9)

	gotCount, gotSum = histogramSnapshot(t, CompressionPercent)
	assert.Equal(t, compCount+3, gotCount)
	assert.InDelta(t, compSum+37.5, gotSum, 1e-9)
}

func TestRecordEmptyInput(t *testing.T) {
	before := testutil.ToFloat64(EmptyInputsTotal)
	RecordEmptyInput()
	assert.Equal(t, before+1, testutil.ToFloat64(EmptyInputsTotal))
}

func TestGenerationInFlight(t *testing.T) {
	before := testutil.ToFloat64(GenerationsInFlight)
	GenerationStarted()
	assert.Equal(t, before+1, testutil.ToFloat64(GenerationsInFlight))
	GenerationFinished()
	assert.Equal(t, before, testutil.ToFloat64(GenerationsInFlight))
}

func TestRecordExtraction(t *testing.T) {
	counter := ExtractionsTotal.WithLabelValues("pdf", "failure")
	before := testutil.ToFloat64(counter)
	RecordExtraction("pdf", false)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRecordContentFetch(t *testing.T) {
	success := ContentFetchAttemptsTotal.WithLabelValues("success")
	failure := ContentFetchAttemptsTotal.WithLabelValues("failure")
	s0, f0 := testutil.ToFloat64(success), testutil.ToFloat64(failure)

	RecordContentFetchSuccess(200 * time.Millisecond)
	RecordContentFetchFailed(5 * time.Second)

	assert.Equal(t, s0+1, testutil.ToFloat64(success))
	assert.Equal(t, f0+1, testutil.ToFloat64(failure))
}

func TestDownloadMetrics(t *testing.T) {
	UpdateDownloadsStored(7)
	assert.Equal(t, float64(7), testutil.ToFloat64(DownloadsStored))

	before := testutil.ToFloat64(DownloadsPurgedTotal)
	RecordDownloadsPurged(3)
	assert.Equal(t, before+3, testutil.ToFloat64(DownloadsPurgedTotal))

	served := DownloadsServedTotal.WithLabelValues("not_found")
	s0 := testutil.ToFloat64(served)
	RecordDownloadServed("not_found")
	assert.Equal(t, s0+1, testutil.ToFloat64(served))
}
