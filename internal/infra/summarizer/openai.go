package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"text-summarizer/internal/config"
	"text-summarizer/internal/usecase/summarize"
)

// OpenAI approximates the summarization contract with a chat completion model.
type OpenAI struct {
	client *openai.Client
	model  string
	guard  *guard
}

// NewOpenAI creates the OpenAI backend. An empty BaseURL keeps the SDK default.
func NewOpenAI(cfg config.OpenAIConfig, timeout time.Duration, opts Options) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: timeout}
	return &OpenAI{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		guard:  newGuard(config.BackendOpenAI, opts),
	}
}

// Name implements summarize.Generator.
func (o *OpenAI) Name() string { return config.BackendOpenAI }

// Generate implements summarize.Generator.
func (o *OpenAI) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	prompt := summarize.TruncateToTokens(req.Prompt, req.Params.MaxInputTokens)
	return o.guard.call(ctx, req.Params, func(ctx context.Context) (string, error) {
		return o.doGenerate(ctx, prompt, req.Params)
	})
}

func (o *OpenAI) doGenerate(ctx context.Context, prompt string, params summarize.GenerationParams) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: params.MaxLength,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: chatInstruction(params)},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", openAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api: %w", errEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// openAIError maps SDK errors onto retry.HTTPError.
func openAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, reqErr.Error(), err)
	}
	return fmt.Errorf("openai api: %w", err)
}

// Health implements summarize.Generator by listing models.
func (o *OpenAI) Health(ctx context.Context) (*summarize.HealthStatus, error) {
	return o.guard.health(ctx, func(ctx context.Context) error {
		_, err := o.client.ListModels(ctx)
		return err
	})
}
