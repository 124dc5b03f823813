package summarizer

import (
	"fmt"

	"text-summarizer/internal/config"
	"text-summarizer/internal/resilience/circuitbreaker"
	"text-summarizer/internal/resilience/retry"
	"text-summarizer/internal/usecase/summarize"
)

// New builds the generator selected by cfg.Backend.
func New(cfg *config.SummarizerConfig) (summarize.Generator, error) {
	opts := optionsFromConfig(cfg)
	switch cfg.Backend {
	case config.BackendHuggingFace:
		return NewHuggingFace(cfg.HuggingFace, nil, cfg.Timeout, opts), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAI, cfg.Timeout, opts), nil
	case config.BackendClaude:
		return NewClaude(cfg.Claude, cfg.Timeout, opts), nil
	case config.BackendNoop:
		return NoOp{}, nil
	default:
		return nil, fmt.Errorf("unknown summarizer backend %q", cfg.Backend)
	}
}

func optionsFromConfig(cfg *config.SummarizerConfig) Options {
	retryCfg := retry.GenerationConfig()
	retryCfg.MaxAttempts = cfg.RetryAttempts

	breaker := circuitbreaker.GeneratorConfig(cfg.Backend)
	breaker.MaxRequests = cfg.CircuitBreaker.MaxRequests
	breaker.Interval = cfg.CircuitBreaker.Interval
	breaker.Timeout = cfg.CircuitBreaker.Timeout
	breaker.FailureThreshold = cfg.CircuitBreaker.FailureThreshold
	breaker.MinRequests = cfg.CircuitBreaker.MinRequests

	return Options{
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Retry:     retryCfg,
		Breaker:   breaker,
	}
}
