package entity

import (
	"errors"
	"fmt"
)

// EmptyInputWarning is the user-facing message shown when there is nothing to summarize.
const EmptyInputWarning = "Please enter or upload some text."

// Sentinel errors for domain layer operations.
var (
	// ErrEmptyInput indicates that neither typed text nor an upload produced any text
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTone indicates an unknown tone name
	ErrInvalidTone = errors.New("invalid tone")

	// ErrInvalidLength indicates a target word count outside the accepted range
	ErrInvalidLength = errors.New("invalid summary length")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap exposes the underlying sentinel, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
