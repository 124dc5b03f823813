package entity

import (
	"math"
	"time"
)

// Summary is a generated summary after post-processing.
type Summary struct {
	ID string
	// Text is the final summary with keyword emphasis applied.
	Text string
	// Raw is the generator output before any post-processing.
	Raw       string
	Options   SummaryOptions
	CreatedAt time.Time
}

// ReadabilityScores are computed on the original input, never on the summary.
type ReadabilityScores struct {
	FleschReadingEase  float64
	FleschKincaidGrade float64
	GunningFog         float64
}

// Metrics describes a summary relative to its input.
type Metrics struct {
	OriginalWords int
	SummaryWords  int
	// Compression is the percentage of words removed, one decimal place.
	Compression float64
	Readability ReadabilityScores
}

// Compression returns 100*(1-summary/original) rounded to one decimal.
// Zero original words yields 0.
func Compression(originalWords, summaryWords int) float64 {
	if originalWords == 0 {
		return 0
	}
	ratio := 100 * (1 - float64(summaryWords)/float64(originalWords))
	return math.Round(ratio*10) / 10
}
