package summarizer

import (
	"errors"
	"fmt"

	"text-summarizer/internal/usecase/summarize"
)

var (
	// ErrCircuitOpen is returned while a backend's circuit breaker refuses calls.
	// It matches summarize.ErrGeneratorUnavailable.
	ErrCircuitOpen = fmt.Errorf("%w: circuit breaker open", summarize.ErrGeneratorUnavailable)

	errEmptyResponse = errors.New("empty response")
)
