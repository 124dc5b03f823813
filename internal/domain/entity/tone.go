package entity

import (
	"fmt"
	"strings"
)

// Tone selects an optional stylistic instruction placed in front of the input text.
type Tone string

const (
	ToneDefault  Tone = "Default"
	ToneFormal   Tone = "Formal"
	ToneInformal Tone = "Informal"
	ToneAcademic Tone = "Academic"
	ToneConcise  Tone = "Concise"
)

var tones = []Tone{ToneDefault, ToneFormal, ToneInformal, ToneAcademic, ToneConcise}

// Tones returns every supported tone in display order.
func Tones() []Tone {
	out := make([]Tone, len(tones))
	copy(out, tones)
	return out
}

// ParseTone resolves a tone name case-insensitively. An empty name means ToneDefault.
func ParseTone(name string) (Tone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ToneDefault, nil
	}
	for _, t := range tones {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", &ValidationError{
		Field:   "tone",
		Message: fmt.Sprintf("unknown tone %q", name),
		Err:     ErrInvalidTone,
	}
}

// Instruction returns the prompt prefix for the tone, or "" for ToneDefault.
func (t Tone) Instruction() string {
	if t == "" || t == ToneDefault {
		return ""
	}
	return fmt.Sprintf("Summarize in a %s tone: ", strings.ToLower(string(t)))
}

// String implements fmt.Stringer.
func (t Tone) String() string {
	return string(t)
}
