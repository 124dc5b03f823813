// Package text provides small, allocation-light helpers for word and sentence handling.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountWords counts whitespace separated tokens, the same way the word
// statistics shown next to a summary are computed.
//
//	CountWords("")                 // 0
//	CountWords("  hello   world ") // 2
//	CountWords("one\ntwo\tthree")  // 3
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountRunes counts Unicode characters rather than bytes.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// Flatten trims surrounding whitespace and replaces every newline with a space.
// Other characters, including carriage returns, are left alone.
func Flatten(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

// TruncateWords keeps at most n whitespace separated words, joined by single spaces.
// The input is returned untouched when it already fits.
func TruncateWords(s string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) <= n {
		return s
	}
	return strings.Join(words[:n], " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}
