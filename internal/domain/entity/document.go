package entity

import "strings"

// SourceKind records where the input text came from.
type SourceKind string

const (
	SourceTyped SourceKind = "typed"
	SourceText  SourceKind = "text"
	SourcePDF   SourceKind = "pdf"
	SourceDOCX  SourceKind = "docx"
	SourceHTML  SourceKind = "html"
	SourceURL   SourceKind = "url"
)

// InputDocument is the text to summarize. It lives for a single request.
type InputDocument struct {
	Text     string
	Source   SourceKind
	Filename string
}

// IsEmpty reports whether the document has no text after trimming whitespace.
func (d InputDocument) IsEmpty() bool {
	return strings.TrimSpace(d.Text) == ""
}
