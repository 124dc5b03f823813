package summarizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"text-summarizer/internal/config"
	"text-summarizer/internal/usecase/summarize"
)

// Claude approximates the summarization contract with the Anthropic messages API.
type Claude struct {
	client anthropic.Client
	model  string
	guard  *guard
}

// NewClaude creates the Claude backend. SDK retries are disabled because
// the guard already retries.
func NewClaude(cfg config.ClaudeConfig, timeout time.Duration, opts Options) *Claude {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Claude{
		client: anthropic.NewClient(reqOpts...),
		model:  cfg.Model,
		guard:  newGuard(config.BackendClaude, opts),
	}
}

// Name implements summarize.Generator.
func (c *Claude) Name() string { return config.BackendClaude }

// Generate implements summarize.Generator.
func (c *Claude) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	prompt := summarize.TruncateToTokens(req.Prompt, req.Params.MaxInputTokens)
	return c.guard.call(ctx, req.Params, func(ctx context.Context) (string, error) {
		return c.doGenerate(ctx, prompt, req.Params)
	})
}

func (c *Claude) doGenerate(ctx context.Context, prompt string, params summarize.GenerationParams) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(params.MaxLength),
		System:    []anthropic.TextBlockParam{{Text: chatInstruction(params)}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return "", statusError(apiErr.StatusCode, apiErr.Error(), err)
		}
		return "", fmt.Errorf("claude api: %w", err)
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("claude api: %w", errEmptyResponse)
	}
	block, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		return "", fmt.Errorf("claude api returned unexpected content type %q", message.Content[0].Type)
	}
	return block.Text, nil
}

// Health implements summarize.Generator.
// The messages API has no free probe, so health reflects the breaker only.
func (c *Claude) Health(ctx context.Context) (*summarize.HealthStatus, error) {
	return c.guard.health(ctx, func(context.Context) error { return nil })
}
