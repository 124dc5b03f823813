package summarize

import (
	"regexp"

	"text-summarizer/internal/utils/text"
)

// ShortenToSentences keeps the first n sentences of a summary.
func ShortenToSentences(summary string, n int) string {
	return text.FirstSentences(summary, n)
}

// HighlightKeywords wraps every case-insensitive occurrence of each keyword
// in ** markers, keeping the matched casing. Keywords are applied one after
// another in the given order, so a later keyword can match inside an earlier
// one's markers and repeated keywords wrap again. Empty keywords are skipped.
func HighlightKeywords(summary string, keywords []string) string {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		re := regexp.MustCompile("(?i)(" + regexp.QuoteMeta(kw) + ")")
		summary = re.ReplaceAllString(summary, "**${1}**")
	}
	return summary
}
