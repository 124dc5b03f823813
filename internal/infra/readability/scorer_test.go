package readability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/infra/readability"
)

func TestScorer_Score_Empty(t *testing.T) {
	s := readability.NewScorer()
	assert.Equal(t, entity.ReadabilityScores{}, s.Score(""))
	assert.Equal(t, entity.ReadabilityScores{}, s.Score(" \n\t "))
}

func TestScorer_Score_SimplerTextIsEasier(t *testing.T) {
	s := readability.NewScorer()

	simple := s.Score("The cat sat on the mat. The dog ran to the park. We had fun.")
	dense := s.Score("Notwithstanding considerable methodological heterogeneity, " +
		"contemporary epidemiological investigations consistently demonstrate " +
		"statistically significant associations between socioeconomic deprivation " +
		"and cardiovascular morbidity.")

	assert.Greater(t, simple.FleschReadingEase, dense.FleschReadingEase)
	assert.Less(t, simple.FleschKincaidGrade, dense.FleschKincaidGrade)
	assert.Less(t, simple.GunningFog, dense.GunningFog)
}

func TestScorer_Score_Deterministic(t *testing.T) {
	s := readability.NewScorer()
	text := "Readability depends only on the text. It does not depend on options."
	assert.Equal(t, s.Score(text), s.Score(text))
}
