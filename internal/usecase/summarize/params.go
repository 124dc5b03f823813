package summarize

import (
	"fmt"
	"math"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/utils/text"
)

// WordsToTokensRatio converts a target word count into model tokens.
// English prose averages roughly 1.33 subword tokens per word for BART's
// byte-level BPE vocabulary; the figure is a heuristic, not a measurement.
const WordsToTokensRatio = 1.33

// GenerationParams are the decoding parameters of one generator call.
// Lengths are in model tokens.
type GenerationParams struct {
	MinLength      int     `json:"min_length"`
	MaxLength      int     `json:"max_length"`
	NumBeams       int     `json:"num_beams"`
	LengthPenalty  float64 `json:"length_penalty"`
	EarlyStopping  bool    `json:"early_stopping"`
	MaxInputTokens int     `json:"-"`
}

// DecodingProfile holds the fixed decoding policy.
type DecodingProfile struct {
	NumBeams      int
	LengthPenalty float64
	EarlyStopping bool
	// ShortMinLength and ShortMaxLength bound the three-line mode, in tokens.
	ShortMinLength int
	ShortMaxLength int
	// ShortSentences is how many sentences three-line mode keeps.
	ShortSentences int
	// LengthSlack is added to the minimum length to obtain the maximum in standard mode.
	LengthSlack int
	// MaxInputTokens is the model's input budget; longer inputs are truncated.
	MaxInputTokens int
}

// DefaultProfile returns the decoding policy used by bart-large-cnn deployments.
func DefaultProfile() DecodingProfile {
	return DecodingProfile{
		NumBeams:       4,
		LengthPenalty:  2.0,
		EarlyStopping:  true,
		ShortMinLength: 30,
		ShortMaxLength: 60,
		ShortSentences: 3,
		LengthSlack:    40,
		MaxInputTokens: 1024,
	}
}

// Validate checks that the profile can produce sensible parameters.
func (p DecodingProfile) Validate() error {
	if p.NumBeams < 1 {
		return fmt.Errorf("num_beams must be at least 1, got %d", p.NumBeams)
	}
	if p.ShortMinLength < 1 || p.ShortMaxLength < p.ShortMinLength {
		return fmt.Errorf("invalid three-line bounds: min %d max %d", p.ShortMinLength, p.ShortMaxLength)
	}
	if p.ShortSentences < 1 {
		return fmt.Errorf("short_sentences must be at least 1, got %d", p.ShortSentences)
	}
	if p.LengthSlack < 0 {
		return fmt.Errorf("length_slack must not be negative, got %d", p.LengthSlack)
	}
	if p.MaxInputTokens < 1 {
		return fmt.Errorf("max_input_tokens must be at least 1, got %d", p.MaxInputTokens)
	}
	return nil
}

// TokenBudget converts a word count to tokens, rounded to the nearest integer.
func TokenBudget(words int) int {
	return int(math.Round(float64(words) * WordsToTokensRatio))
}

// Params derives the generation parameters for opts.
// Three-line mode ignores the target length.
func (p DecodingProfile) Params(opts entity.SummaryOptions) GenerationParams {
	params := GenerationParams{
		NumBeams:       p.NumBeams,
		LengthPenalty:  p.LengthPenalty,
		EarlyStopping:  p.EarlyStopping,
		MaxInputTokens: p.MaxInputTokens,
	}
	if opts.ThreeLines {
		params.MinLength = p.ShortMinLength
		params.MaxLength = p.ShortMaxLength
		return params
	}
	params.MinLength = TokenBudget(opts.TargetWords)
	params.MaxLength = params.MinLength + p.LengthSlack
	return params
}

// BuildPrompt flattens the input and prepends the tone instruction, if any.
func BuildPrompt(input string, tone entity.Tone) string {
	return tone.Instruction() + text.Flatten(input)
}

// TruncateToTokens approximates the model's input truncation for backends that
// do not tokenize server side, keeping as many words as fit in maxTokens.
func TruncateToTokens(prompt string, maxTokens int) string {
	if maxTokens <= 0 {
		return prompt
	}
	words := int(float64(maxTokens) / WordsToTokensRatio)
	return text.TruncateWords(prompt, words)
}
