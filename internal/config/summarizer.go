// Package config loads and validates runtime configuration for the server and CLI.
package config

import (
	"fmt"
	"strings"
	"time"

	envconfig "text-summarizer/pkg/config"
)

// Supported generator backends.
const (
	BackendHuggingFace = "huggingface"
	BackendOpenAI      = "openai"
	BackendClaude      = "claude"
	BackendNoop        = "noop"
)

// DefaultHFModel is the summarization checkpoint served by default.
const DefaultHFModel = "facebook/bart-large-cnn"

const hfInferenceBase = "https://router.huggingface.co/hf-inference/models/"

// SummarizerConfig selects and tunes the generator backend.
type SummarizerConfig struct {
	// Backend is one of huggingface, openai, claude, noop. Default: huggingface
	Backend string

	HuggingFace HuggingFaceConfig
	OpenAI      OpenAIConfig
	Claude      ClaudeConfig

	// Timeout bounds a single generation, retries included. Default: 120s
	Timeout time.Duration

	// MaxConcurrent bounds in-flight generations. Default: 2
	MaxConcurrent int

	// RateLimit is the outbound request rate per second; RateBurst the bucket size.
	RateLimit float64
	RateBurst int

	// RetryAttempts is the total number of attempts per generation. Default: 4
	RetryAttempts int

	CircuitBreaker CircuitBreakerConfig
}

// HuggingFaceConfig configures the inference endpoint client.
type HuggingFaceConfig struct {
	// APIURL is the full model endpoint. Defaults to the hosted inference API for Model.
	APIURL string
	// Token is sent as a bearer token when set. Self-hosted endpoints may not need one.
	Token string
	Model string
}

// OpenAIConfig configures the OpenAI chat completion backend.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// ClaudeConfig configures the Anthropic messages backend.
type ClaudeConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// CircuitBreakerConfig for generator resilience.
type CircuitBreakerConfig struct {
	// MaxRequests in half-open state.
	MaxRequests uint32

	// Interval for clearing failure counts.
	Interval time.Duration

	// Timeout before transitioning from open to half-open.
	Timeout time.Duration

	// FailureThreshold ratio to trip circuit (0.0 to 1.0).
	FailureThreshold float64

	// MinRequests before calculating failure ratio.
	MinRequests uint32
}

// LoadSummarizerConfig loads generator configuration from environment variables.
func LoadSummarizerConfig() (*SummarizerConfig, error) {
	model := envconfig.GetEnvString("HF_MODEL", DefaultHFModel)
	cfg := &SummarizerConfig{
		Backend: strings.ToLower(envconfig.GetEnvString("SUMMARIZER_BACKEND", BackendHuggingFace)),
		HuggingFace: HuggingFaceConfig{
			APIURL: envconfig.GetEnvString("HF_API_URL", hfInferenceBase+model),
			Token:  envconfig.GetEnvString("HF_API_TOKEN", ""),
			Model:  model,
		},
		OpenAI: OpenAIConfig{
			APIKey:  envconfig.GetEnvString("OPENAI_API_KEY", ""),
			Model:   envconfig.GetEnvString("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: envconfig.GetEnvString("OPENAI_BASE_URL", ""),
		},
		Claude: ClaudeConfig{
			APIKey:  envconfig.GetEnvString("ANTHROPIC_API_KEY", ""),
			Model:   envconfig.GetEnvString("CLAUDE_MODEL", "claude-sonnet-4-5-20250929"),
			BaseURL: envconfig.GetEnvString("ANTHROPIC_BASE_URL", ""),
		},
		Timeout:       envconfig.GetEnvDuration("SUMMARIZER_TIMEOUT", 120*time.Second),
		MaxConcurrent: envconfig.GetEnvInt("SUMMARIZER_MAX_CONCURRENT", 2),
		RateLimit:     envconfig.GetEnvFloat("SUMMARIZER_RATE_LIMIT", 2),
		RateBurst:     envconfig.GetEnvInt("SUMMARIZER_RATE_BURST", 4),
		RetryAttempts: envconfig.GetEnvInt("SUMMARIZER_RETRY_ATTEMPTS", 4),
		CircuitBreaker: CircuitBreakerConfig{
			MaxRequests:      uint32(envconfig.GetEnvInt("SUMMARIZER_CB_MAX_REQUESTS", 2)),
			Interval:         envconfig.GetEnvDuration("SUMMARIZER_CB_INTERVAL", 60*time.Second),
			Timeout:          envconfig.GetEnvDuration("SUMMARIZER_CB_TIMEOUT", 30*time.Second),
			FailureThreshold: envconfig.GetEnvFloat("SUMMARIZER_CB_FAILURE_THRESHOLD", 0.6),
			MinRequests:      uint32(envconfig.GetEnvInt("SUMMARIZER_CB_MIN_REQUESTS", 5)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid summarizer configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *SummarizerConfig) Validate() error {
	switch c.Backend {
	case BackendHuggingFace:
		if c.HuggingFace.APIURL == "" {
			return fmt.Errorf("HF_API_URL cannot be empty")
		}
		if !strings.HasPrefix(c.HuggingFace.APIURL, "http://") && !strings.HasPrefix(c.HuggingFace.APIURL, "https://") {
			return fmt.Errorf("HF_API_URL must be an http(s) URL")
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai backend")
		}
		if c.OpenAI.Model == "" {
			return fmt.Errorf("OPENAI_MODEL cannot be empty")
		}
	case BackendClaude:
		if c.Claude.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the claude backend")
		}
		if c.Claude.Model == "" {
			return fmt.Errorf("CLAUDE_MODEL cannot be empty")
		}
	case BackendNoop:
	default:
		return fmt.Errorf("SUMMARIZER_BACKEND %q is not one of huggingface, openai, claude, noop", c.Backend)
	}

	if err := envconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("SUMMARIZER_TIMEOUT: %w", err)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("SUMMARIZER_MAX_CONCURRENT must be at least 1")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("SUMMARIZER_RATE_LIMIT must be positive")
	}
	if c.RateBurst < 1 {
		return fmt.Errorf("SUMMARIZER_RATE_BURST must be at least 1")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("SUMMARIZER_RETRY_ATTEMPTS must be at least 1")
	}
	if c.CircuitBreaker.FailureThreshold <= 0 || c.CircuitBreaker.FailureThreshold > 1 {
		return fmt.Errorf("SUMMARIZER_CB_FAILURE_THRESHOLD must be in (0, 1]")
	}
	if c.CircuitBreaker.MaxRequests == 0 {
		return fmt.Errorf("SUMMARIZER_CB_MAX_REQUESTS must be positive")
	}
	if err := envconfig.ValidatePositiveDuration(c.CircuitBreaker.Timeout); err != nil {
		return fmt.Errorf("SUMMARIZER_CB_TIMEOUT: %w", err)
	}
	return nil
}
