// Package summarize implements the summarization use case: prompt construction,
// generator invocation with fixed decoding parameters, post-processing and
// summary metrics.
package summarize

import "errors"

// Sentinel errors for summarization.
var (
	// ErrGenerationFailed indicates the generator returned an error or an unusable result.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrGeneratorUnavailable indicates the generator is refusing calls, typically
	// because its circuit breaker is open. Generators wrap it so callers can
	// distinguish it from an ordinary failure.
	ErrGeneratorUnavailable = errors.New("generator unavailable")

	// ErrSummaryNotFound indicates an unknown or expired summary ID.
	ErrSummaryNotFound = errors.New("summary not found")
)
