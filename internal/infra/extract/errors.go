// Package extract turns uploaded files and article URLs into plain text.
package extract

import "errors"

var (
	// ErrUnsupportedType indicates a file whose kind cannot be determined or has no extractor.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidEncoding indicates a text file that is not valid UTF-8 (or UTF-16 with a BOM).
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrCorruptDocument indicates a PDF or Word file that could not be parsed.
	ErrCorruptDocument = errors.New("corrupt document")

	// ErrInvalidURL indicates a malformed article URL or a disallowed scheme.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP indicates an article URL resolving to a private or loopback address.
	ErrPrivateIP = errors.New("URL resolves to a private address")

	// ErrTooManyRedirects indicates the redirect limit was exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge indicates a fetched page larger than the configured limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrFetchFailed indicates the article page could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoContent indicates a page or document with no readable text.
	ErrNoContent = errors.New("no readable content")
)
