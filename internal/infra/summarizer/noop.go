package summarizer

import (
	"context"

	"text-summarizer/internal/config"
	"text-summarizer/internal/usecase/summarize"
	"text-summarizer/internal/utils/text"
)

// NoOp is a Generator that returns the leading words of the prompt.
// It needs no network access and is meant for local development and demos.
type NoOp struct{}

// Name implements summarize.Generator.
func (NoOp) Name() string { return config.BackendNoop }

// Generate returns as many prompt words as the maximum length allows.
func (NoOp) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	words := int(float64(req.Params.MaxLength) / summarize.WordsToTokensRatio)
	if words < 1 {
		words = 1
	}
	return text.TruncateWords(req.Prompt, words), nil
}

// Health implements summarize.Generator.
func (NoOp) Health(context.Context) (*summarize.HealthStatus, error) {
	return &summarize.HealthStatus{Healthy: true, Message: "noop"}, nil
}
