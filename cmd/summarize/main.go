// Package main provides the summarize CLI, which runs the summarization
// pipeline against local files, typed text or article URLs.
//
// Usage:
//
//	summarize run --file report.pdf --tone Formal --keywords "revenue, growth"
//	summarize run --text "..." --three-lines --output markdown
//	summarize tones
//
// See --help for all available options.
package main

func main() {
	Execute()
}
