package entity

import (
	"fmt"
	"strings"
)

// Bounds of the target summary length, in words.
const (
	MinTargetWords     = 30
	MaxTargetWords     = 200
	DefaultTargetWords = 60
)

// SummaryOptions carries the user's choices for one summarization.
type SummaryOptions struct {
	Tone Tone
	// Keywords are highlighted in entry order. Duplicates are kept.
	Keywords []string
	// TargetWords is ignored when ThreeLines is set.
	TargetWords int
	ThreeLines  bool
}

// DefaultOptions returns the options a fresh form starts with.
func DefaultOptions() SummaryOptions {
	return SummaryOptions{
		Tone:        ToneDefault,
		TargetWords: DefaultTargetWords,
	}
}

// Validate checks the tone and the target length range.
func (o SummaryOptions) Validate() error {
	if _, err := ParseTone(string(o.Tone)); err != nil {
		return err
	}
	if o.TargetWords < MinTargetWords || o.TargetWords > MaxTargetWords {
		return &ValidationError{
			Field:   "length",
			Message: fmt.Sprintf("must be between %d and %d words, got %d", MinTargetWords, MaxTargetWords, o.TargetWords),
			Err:     ErrInvalidLength,
		}
	}
	return nil
}

// ParseKeywords splits a comma separated keyword field and trims each entry.
// Entries that are empty after trimming are dropped.
func ParseKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
