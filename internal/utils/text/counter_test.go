package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "whitespace only", in: " \n\t ", want: 0},
		{name: "single word", in: "hello", want: 1},
		{name: "irregular spacing", in: "  hello   world ", want: 2},
		{name: "mixed separators", in: "one\ntwo\tthree\r\nfour", want: 4},
		{name: "punctuation sticks to words", in: "Hi, there. Bye!", want: 3},
		{name: "**bold** counts as one", in: "the **cat** sat", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWords(tt.in))
		})
	}
}

func TestCountRunes(t *testing.T) {
	assert.Equal(t, 0, CountRunes(""))
	assert.Equal(t, 5, CountRunes("hello"))
	assert.Equal(t, 7, CountRunes("hello世界"))
	assert.Equal(t, 6, CountRunes("Hello👋"))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "trims", in: "  abc  ", want: "abc"},
		{name: "newlines become spaces", in: "a\nb\n\nc", want: "a b  c"},
		{name: "surrounding newlines trimmed first", in: "\n\na\nb\n", want: "a b"},
		{name: "carriage return kept", in: "a\r\nb", want: "a\r b"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.in))
		})
	}
}

func TestTruncateWords(t *testing.T) {
	assert.Equal(t, "", TruncateWords("a b c", 0))
	assert.Equal(t, "a  b", TruncateWords("a  b", 2))
	assert.Equal(t, "a b", TruncateWords("a  b   c", 2))
}
