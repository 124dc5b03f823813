package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHighlightKeywords(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		keywords []string
		want     string
	}{
		{
			name:     "no keywords",
			summary:  "The cat sat.",
			keywords: nil,
			want:     "The cat sat.",
		},
		{
			name:     "case insensitive keeps original casing",
			summary:  "The Cat sat with another cat.",
			keywords: []string{"cat"},
			want:     "The **Cat** sat with another **cat**.",
		},
		{
			name:     "substring matches",
			summary:  "Concatenate categories.",
			keywords: []string{"cat"},
			want:     "Con**cat**enate **cat**egories.",
		},
		{
			name:     "regex metacharacters are literal",
			summary:  "Costs rose 5% (a.k.a. inflation); a+b held.",
			keywords: []string{"a.k.a.", "a+b", "5%"},
			want:     "Costs rose **5%** (**a.k.a.** inflation); **a+b** held.",
		},
		{
			name:     "earlier markers block a longer keyword",
			summary:  "the cat sat",
			keywords: []string{"cat", "the cat"},
			want:     "the **cat** sat",
		},
		{
			name:     "later keyword wraps inside earlier markers",
			summary:  "machine learning rocks",
			keywords: []string{"learning", "learn"},
			want:     "machine ****learn**ing** rocks",
		},
		{
			name:     "duplicate keyword wraps twice",
			summary:  "dog",
			keywords: []string{"dog", "dog"},
			want:     "****dog****",
		},
		{
			name:     "empty keyword skipped",
			summary:  "abc",
			keywords: []string{""},
			want:     "abc",
		},
		{
			name:     "dollar sign in keyword is not a group reference",
			summary:  "price is $1 today",
			keywords: []string{"$1"},
			want:     "price is **$1** today",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightKeywords(tt.summary, tt.keywords))
		})
	}
}

func TestShortenToSentences(t *testing.T) {
	assert.Equal(t, "S1. S2. S3.", ShortenToSentences("S1. S2. S3. S4. S5.", 3))
	assert.Equal(t, "Only. Two.", ShortenToSentences("Only. Two.", 3))
	assert.Equal(t, "no terminator at all", ShortenToSentences("no terminator at all", 3))
}
