package extract

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/observability/tracing"
	textutil "text-summarizer/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
)

// Func extracts text from the raw bytes of one file.
type Func func(data []byte) (string, error)

// FileType describes an accepted upload format.
type FileType struct {
	Kind        entity.SourceKind `json:"kind"`
	Extension   string            `json:"extension"`
	ContentType string            `json:"content_type"`
}

// Content types of the accepted formats.
const (
	ContentTypeText = "text/plain"
	ContentTypePDF  = "application/pdf"
	ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	ContentTypeHTML = "text/html"
)

var fileTypes = []FileType{
	{Kind: entity.SourceText, Extension: ".txt", ContentType: ContentTypeText},
	{Kind: entity.SourcePDF, Extension: ".pdf", ContentType: ContentTypePDF},
	{Kind: entity.SourceDOCX, Extension: ".docx", ContentType: ContentTypeDOCX},
	{Kind: entity.SourceHTML, Extension: ".html", ContentType: ContentTypeHTML},
}

// FileTypes lists the accepted upload formats.
func FileTypes() []FileType {
	out := make([]FileType, len(fileTypes))
	copy(out, fileTypes)
	return out
}

// DetectKind decides the file kind from the declared content type, falling
// back to the file extension when the content type is absent or generic.
func DetectKind(filename, contentType string) (entity.SourceKind, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		for _, ft := range fileTypes {
			if mediaType == ft.ContentType {
				return ft.Kind, nil
			}
		}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".htm" {
		ext = ".html"
	}
	for _, ft := range fileTypes {
		if ext == ft.Extension {
			return ft.Kind, nil
		}
	}
	return "", fmt.Errorf("%w: %q (%s)", ErrUnsupportedType, filename, contentType)
}

// Registry maps file kinds to extractors.
type Registry struct {
	extractors map[entity.SourceKind]Func
}

// NewRegistry returns a registry with the text, PDF, Word and HTML extractors.
func NewRegistry() *Registry {
	return &Registry{
		extractors: map[entity.SourceKind]Func{
			entity.SourceText: DecodeText,
			entity.SourcePDF:  PDFText,
			entity.SourceDOCX: DocxText,
			entity.SourceHTML: HTMLText,
		},
	}
}

// Register replaces the extractor for kind.
func (r *Registry) Register(kind entity.SourceKind, fn Func) {
	r.extractors[kind] = fn
}

// Extract detects the kind of an uploaded file and extracts its text.
func (r *Registry) Extract(ctx context.Context, filename, contentType string, data []byte) (entity.InputDocument, error) {
	kind, err := DetectKind(filename, contentType)
	if err != nil {
		return entity.InputDocument{}, err
	}
	fn, ok := r.extractors[kind]
	if !ok {
		return entity.InputDocument{}, fmt.Errorf("%w: no extractor for %s", ErrUnsupportedType, kind)
	}

	ctx, span := tracing.StartSpan(ctx, "extract.file",
		attribute.String("extract.kind", string(kind)),
		attribute.Int("extract.bytes", len(data)))
	text, err := fn(data)
	tracing.EndSpan(span, err)
	metrics.RecordExtraction(string(kind), err == nil)

	if err != nil {
		slog.WarnContext(ctx, "file extraction failed",
			slog.String("kind", string(kind)),
			slog.String("filename", filename),
			slog.Any("error", err))
		return entity.InputDocument{}, err
	}

	slog.DebugContext(ctx, "file extracted",
		slog.String("kind", string(kind)),
		slog.Int("bytes", len(data)),
		slog.Int("runes", textutil.CountRunes(text)))
	return entity.InputDocument{Text: text, Source: kind, Filename: filename}, nil
}
