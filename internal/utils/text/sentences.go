package text

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences splits s at every run of whitespace that directly follows
// '.', '!' or '?'. The terminator stays with its sentence and the whitespace
// is dropped. Text without terminators comes back as a single element, and
// whitespace after the final terminator produces a trailing empty element,
// mirroring a plain regex split.
func SplitSentences(s string) []string {
	var parts []string
	start := 0
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '.' && r != '!' && r != '?' {
			i += size
			continue
		}
		end := i + size
		j := end
		for j < len(s) {
			sr, ssize := utf8.DecodeRuneInString(s[j:])
			if !isSpace(sr) {
				break
			}
			j += ssize
		}
		if j == end {
			i = end
			continue
		}
		parts = append(parts, s[start:end])
		start = j
		i = j
	}
	return append(parts, s[start:])
}

// FirstSentences keeps the first n sentences of s joined by a single space.
func FirstSentences(s string, n int) string {
	if n <= 0 {
		return ""
	}
	parts := SplitSentences(s)
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.Join(parts, " ")
}
