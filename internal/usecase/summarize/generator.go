package summarize

import (
	"context"
	"time"

	"text-summarizer/internal/domain/entity"
)

// Generator produces an abstractive summary for a prompt.
// Implementations are built once at startup and shared by all requests,
// so they must be safe for concurrent use.
type Generator interface {
	// Generate returns the raw model output for req.
	Generate(ctx context.Context, req GenerateRequest) (string, error)

	// Health reports whether the backend is reachable.
	Health(ctx context.Context) (*HealthStatus, error)

	// Name identifies the backend in logs, metrics and health output.
	Name() string
}

// GenerateRequest is one generator call.
type GenerateRequest struct {
	// Prompt is the flattened input text, tone instruction included.
	Prompt string
	Params GenerationParams
}

// HealthStatus represents the health of a generator backend.
type HealthStatus struct {
	Healthy     bool
	Latency     time.Duration
	Message     string
	CircuitOpen bool
}

// ReadabilityScorer computes readability scores for a text.
type ReadabilityScorer interface {
	Score(text string) entity.ReadabilityScores
}

// Store keeps finished summaries available for download.
type Store interface {
	Save(ctx context.Context, summary entity.Summary) error
	// Get returns ErrSummaryNotFound for unknown or expired IDs.
	Get(ctx context.Context, id string) (entity.Summary, error)
}
