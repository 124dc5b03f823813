package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"text-summarizer/internal/resilience/circuitbreaker"
	"text-summarizer/internal/resilience/retry"
	"text-summarizer/internal/usecase/summarize"
	"text-summarizer/internal/utils/text"
)

// Options tunes the resilience guard shared by network backends.
type Options struct {
	RateLimit float64
	RateBurst int
	Retry     retry.Config
	Breaker   circuitbreaker.Config
	Metrics   GenerationMetricsRecorder
}

// guard paces, retries and circuit-breaks calls to one backend.
type guard struct {
	backend string
	limiter *Limiter
	breaker *circuitbreaker.CircuitBreaker
	retry   retry.Config
	metrics GenerationMetricsRecorder
}

func newGuard(backend string, opts Options) *guard {
	if opts.Breaker.Name == "" {
		opts.Breaker = circuitbreaker.GeneratorConfig(backend)
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = retry.GenerationConfig()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewPrometheusGenerationMetrics()
	}
	return &guard{
		backend: backend,
		limiter: NewLimiter(opts.RateLimit, opts.RateBurst),
		breaker: circuitbreaker.New(opts.Breaker),
		retry:   opts.Retry,
		metrics: opts.Metrics,
	}
}

// call runs fn with pacing, retry and the circuit breaker.
// Retry wraps the breaker, so every attempt counts towards tripping it and
// an open breaker ends the retry loop immediately.
func (g *guard) call(ctx context.Context, params summarize.GenerationParams, fn func(context.Context) (string, error)) (string, error) {
	start := time.Now()
	var out string

	err := retry.WithBackoff(ctx, g.retry, func() error {
		if err := g.limiter.Wait(ctx); err != nil {
			return err
		}
		res, err := g.breaker.Execute(func() (interface{}, error) {
			return fn(ctx)
		})
		if err != nil {
			return err
		}
		out = res.(string)
		return nil
	})
	duration := time.Since(start)

	if err != nil {
		if circuitbreaker.IsRejection(err) {
			g.metrics.RecordCall(g.backend, "rejected", duration)
			slog.WarnContext(ctx, "generator call rejected",
				slog.String("backend", g.backend),
				slog.String("circuit", g.breaker.Name()))
			return "", fmt.Errorf("%s: %w", g.backend, ErrCircuitOpen)
		}
		g.metrics.RecordCall(g.backend, "failure", duration)
		slog.ErrorContext(ctx, "generator call failed",
			slog.String("backend", g.backend),
			slog.Duration("duration", duration),
			slog.Any("error", err))
		return "", err
	}

	tokens := summarize.TokenBudget(text.CountWords(out))
	within := tokens >= params.MinLength && tokens <= params.MaxLength
	g.metrics.RecordCall(g.backend, "success", duration)
	g.metrics.RecordOutputTokens(g.backend, tokens)
	g.metrics.RecordBoundsCompliance(g.backend, within)

	slog.InfoContext(ctx, "generator call completed",
		slog.String("backend", g.backend),
		slog.Duration("duration", duration),
		slog.Int("approx_tokens", tokens),
		slog.Int("min_length", params.MinLength),
		slog.Int("max_length", params.MaxLength),
		slog.Bool("within_bounds", within))
	return out, nil
}

// health runs probe unless the breaker is open.
func (g *guard) health(ctx context.Context, probe func(context.Context) error) (*summarize.HealthStatus, error) {
	if g.breaker.IsOpen() {
		return &summarize.HealthStatus{
			Healthy:     false,
			Message:     "circuit breaker open",
			CircuitOpen: true,
		}, nil
	}

	start := time.Now()
	err := probe(ctx)
	latency := time.Since(start)
	if err != nil {
		return &summarize.HealthStatus{
			Healthy: false,
			Latency: latency,
			Message: err.Error(),
		}, nil
	}
	return &summarize.HealthStatus{Healthy: true, Latency: latency, Message: "ok"}, nil
}

// statusError turns an SDK status code into a retry.HTTPError so the retry
// policy sees the same classification for every backend.
func statusError(status int, msg string, err error) error {
	if status == 0 {
		return err
	}
	return &retry.HTTPError{StatusCode: status, Message: msg}
}
