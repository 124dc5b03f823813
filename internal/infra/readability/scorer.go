// Package readability scores texts with classic readability formulas.
package readability

import (
	"math"
	"strings"

	"github.com/jdkato/prose/summarize"

	"text-summarizer/internal/domain/entity"
)

// Scorer computes Flesch Reading Ease, Flesch-Kincaid Grade and Gunning Fog.
// It is stateless and safe for concurrent use.
type Scorer struct{}

// NewScorer returns a Scorer.
func NewScorer() *Scorer { return &Scorer{} }

// Score returns zero scores for blank text. Formulas that divide by a zero
// sentence or word count also yield zero instead of NaN or Inf.
func (s *Scorer) Score(text string) entity.ReadabilityScores {
	if strings.TrimSpace(text) == "" {
		return entity.ReadabilityScores{}
	}
	doc := summarize.NewDocument(text)
	return entity.ReadabilityScores{
		FleschReadingEase:  finite(doc.FleschReadingEase()),
		FleschKincaidGrade: finite(doc.FleschKincaid()),
		GunningFog:         finite(doc.GunningFog()),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
