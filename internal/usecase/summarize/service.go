package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/observability/logging"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/observability/tracing"
	"text-summarizer/internal/utils/text"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"
)

// Config tunes the Service.
type Config struct {
	Profile DecodingProfile
	// MaxConcurrent bounds in-flight generations. Zero or less means unbounded.
	MaxConcurrent int64
	// Timeout bounds a single generator call. Zero means no extra deadline.
	Timeout time.Duration
}

// Result is a finished summary together with its metrics.
type Result struct {
	Summary entity.Summary
	Metrics entity.Metrics
	Params  GenerationParams
	Backend string
}

// Service runs the summarization pipeline.
type Service struct {
	gen     Generator
	scorer  ReadabilityScorer
	store   Store
	profile DecodingProfile
	sem     *semaphore.Weighted
	timeout time.Duration

	newID func() string
	now   func() time.Time
}

// NewService wires a generator, a readability scorer and a download store.
// store may be nil when downloads are not needed (the CLI).
func NewService(gen Generator, scorer ReadabilityScorer, store Store, cfg Config) *Service {
	s := &Service{
		gen:     gen,
		scorer:  scorer,
		store:   store,
		profile: cfg.Profile,
		timeout: cfg.Timeout,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	if cfg.MaxConcurrent > 0 {
		s.sem = semaphore.NewWeighted(cfg.MaxConcurrent)
	}
	return s
}

// Profile returns the decoding policy in use.
func (s *Service) Profile() DecodingProfile {
	return s.profile
}

// Backend returns the generator name.
func (s *Service) Backend() string {
	return s.gen.Name()
}

// Health probes the generator.
func (s *Service) Health(ctx context.Context) (*HealthStatus, error) {
	return s.gen.Health(ctx)
}

// Summarize produces a summary of doc using opts.
//
// An empty document returns entity.ErrEmptyInput without calling the generator.
// Invalid options return an *entity.ValidationError. Generator failures are
// wrapped in ErrGenerationFailed; the original cause stays in the chain so
// callers can still match ErrGeneratorUnavailable or context.DeadlineExceeded.
func (s *Service) Summarize(ctx context.Context, doc entity.InputDocument, opts entity.SummaryOptions) (*Result, error) {
	logger := logging.ForRequest(ctx, slog.Default())

	if doc.IsEmpty() {
		metrics.RecordEmptyInput()
		return nil, entity.ErrEmptyInput
	}
	if opts.Tone == "" {
		opts.Tone = entity.ToneDefault
	}
	if opts.TargetWords == 0 {
		opts.TargetWords = entity.DefaultTargetWords
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.StartSpan(ctx, "summarize.Summarize",
		attribute.String("source", string(doc.Source)),
		attribute.String("tone", string(opts.Tone)),
		attribute.Bool("three_lines", opts.ThreeLines),
	)

	start := time.Now()
	res, err := s.run(ctx, logger, doc, opts)
	metrics.RecordSummary(err == nil, opts.ThreeLines, time.Since(start))
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) run(ctx context.Context, logger *slog.Logger, doc entity.InputDocument, opts entity.SummaryOptions) (*Result, error) {
	params := s.profile.Params(opts)
	prompt := BuildPrompt(doc.Text, opts.Tone)
	originalWords := text.CountWords(doc.Text)

	logger.Info("summarization started",
		slog.String("backend", s.gen.Name()),
		slog.String("source", string(doc.Source)),
		slog.Int("input_words", originalWords),
		slog.Int("min_length", params.MinLength),
		slog.Int("max_length", params.MaxLength),
		slog.Bool("three_lines", opts.ThreeLines))

	raw, err := s.generate(ctx, GenerateRequest{Prompt: prompt, Params: params})
	if err != nil {
		logger.Error("summarization failed",
			slog.String("backend", s.gen.Name()),
			slog.Any("error", err))
		return nil, err
	}

	summary := strings.TrimSpace(raw)
	if opts.ThreeLines {
		summary = ShortenToSentences(summary, s.profile.ShortSentences)
	}
	summary = HighlightKeywords(summary, opts.Keywords)

	summaryWords := text.CountWords(summary)
	m := entity.Metrics{
		OriginalWords: originalWords,
		SummaryWords:  summaryWords,
		Compression:   entity.Compression(originalWords, summaryWords),
		Readability:   s.scorer.Score(doc.Text),
	}

	result := &Result{
		Summary: entity.Summary{
			ID:        s.newID(),
			Text:      summary,
			Raw:       raw,
			Options:   opts,
			CreatedAt: s.now(),
		},
		Metrics: m,
		Params:  params,
		Backend: s.gen.Name(),
	}

	if s.store != nil {
		if err := s.store.Save(ctx, result.Summary); err != nil {
			return nil, fmt.Errorf("store summary: %w", err)
		}
	}

	metrics.RecordSummarySize(originalWords, m.Compression)
	logger.Info("summarization completed",
		slog.String("summary_id", result.Summary.ID),
		slog.Int("input_words", originalWords),
		slog.Int("summary_words", summaryWords),
		slog.Float64("compression", m.Compression))

	return result, nil
}

// generate acquires a concurrency slot, applies the per-call timeout and
// invokes the generator.
func (s *Service) generate(ctx context.Context, req GenerateRequest) (string, error) {
	if s.sem != nil {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return "", fmt.Errorf("%w: waiting for a free slot: %w", ErrGenerationFailed, err)
		}
		defer s.sem.Release(1)
	}
	metrics.GenerationStarted()
	defer metrics.GenerationFinished()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx, span := tracing.StartSpan(ctx, "summarize.generate",
		attribute.String("backend", s.gen.Name()),
		attribute.Int("min_length", req.Params.MinLength),
		attribute.Int("max_length", req.Params.MaxLength),
	)
	raw, err := s.gen.Generate(ctx, req)
	if err == nil && strings.TrimSpace(raw) == "" {
		err = errors.New("empty model output")
	}
	tracing.EndSpan(span, err)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return raw, nil
}

// Lookup returns a previously generated summary for download.
func (s *Service) Lookup(ctx context.Context, id string) (entity.Summary, error) {
	if s.store == nil || id == "" {
		return entity.Summary{}, ErrSummaryNotFound
	}
	return s.store.Get(ctx, id)
}
