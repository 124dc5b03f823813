package summarizer

import (
	"fmt"
	"math"

	"text-summarizer/internal/usecase/summarize"
)

// chatInstruction tells a chat model to behave like an abstractive
// summarizer bounded by params. Chat models cannot enforce token bounds,
// so the bounds are stated in words.
func chatInstruction(params summarize.GenerationParams) string {
	minWords := int(math.Round(float64(params.MinLength) / summarize.WordsToTokensRatio))
	maxWords := int(math.Round(float64(params.MaxLength) / summarize.WordsToTokensRatio))
	return fmt.Sprintf(
		"You are an abstractive summarization model. Summarize the user's text in "+
			"%d to %d words of plain prose. If the text starts with a tone instruction, "+
			"follow it. Output only the summary, without headings, lists or preamble.",
		minWords, maxWords)
}
