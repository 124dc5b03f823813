package summary

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/handler/http/respond"
	"text-summarizer/internal/observability/logging"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/usecase/summarize"
)

// Summarizer runs the summarization pipeline.
type Summarizer interface {
	Summarize(ctx context.Context, doc entity.InputDocument, opts entity.SummaryOptions) (*summarize.Result, error)
}

// FileExtractor turns an uploaded file into text.
type FileExtractor interface {
	Extract(ctx context.Context, filename, contentType string, data []byte) (entity.InputDocument, error)
}

// URLFetcher turns an article URL into text.
type URLFetcher interface {
	Fetch(ctx context.Context, rawURL string) (entity.InputDocument, error)
}

// CreateHandler serves POST /api/summaries.
type CreateHandler struct {
	Svc   Summarizer
	Files FileExtractor
	// URLs may be nil, which rejects the url field.
	URLs URLFetcher
	// MaxMemory is the in-memory part of a multipart body.
	MaxMemory int64
}

// ServeHTTP creates a summary
// @Summary      Create a summary
// @Description  Summarizes typed text, an article URL or an uploaded .txt, .pdf, .docx or .html file.
// @Description  Typed text wins over the URL, and the URL wins over the file.
// @Tags         summaries
// @Security     BearerAuth
// @Accept       json,mpfd,x-www-form-urlencoded
// @Produce      json
// @Param        request body createRequest false "JSON body"
// @Param        file formData file false "Document to summarize"
// @Param        text formData string false "Text to summarize"
// @Param        url formData string false "Article URL"
// @Param        tone formData string false "Default, Formal, Informal, Academic or Concise"
// @Param        keywords formData string false "Comma separated keywords to highlight"
// @Param        length formData int false "Target summary length in words (30-200)"
// @Param        three_lines formData bool false "Keep only the first three sentences"
// @Success      200 {object} DTO "Summary with metrics"
// @Failure      400 {object} map[string]string "Invalid options or URL"
// @Failure      401 {object} map[string]string "Missing or invalid token"
// @Failure      413 {object} map[string]string "Request body too large"
// @Failure      415 {object} map[string]string "Unsupported file type"
// @Failure      422 {object} map[string]string "Empty input warning or unreadable document"
// @Failure      429 {object} map[string]string "Rate limit exceeded"
// @Failure      502 {object} map[string]string "Generation failed"
// @Failure      503 {object} map[string]string "Summarizer unavailable"
// @Failure      504 {object} map[string]string "Summarization timed out"
// @Router       /api/summaries [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.ForRequest(ctx, slog.Default())

	req, err := parseCreateRequest(r, h.MaxMemory)
	if err != nil {
		writeError(w, err)
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	if !req.hasInput() {
		warnEmpty(w, logger)
		return
	}

	opts, err := req.options()
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := h.resolve(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}
	if doc.IsEmpty() {
		warnEmpty(w, logger)
		return
	}

	res, err := h.Svc.Summarize(ctx, doc, opts)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyInput) {
			respond.Warning(w, entity.EmptyInputWarning)
			return
		}
		writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(res))
}

// resolve picks the input: typed text, then URL, then file.
func (h CreateHandler) resolve(ctx context.Context, req *createRequest) (entity.InputDocument, error) {
	if strings.TrimSpace(req.Text) != "" {
		return entity.InputDocument{Text: req.Text, Source: entity.SourceTyped}, nil
	}
	if rawURL := strings.TrimSpace(req.URL); rawURL != "" {
		if h.URLs == nil {
			return entity.InputDocument{}, errURLDisabled
		}
		return h.URLs.Fetch(ctx, rawURL)
	}
	if req.file != nil {
		return h.Files.Extract(ctx, req.file.filename, req.file.contentType, req.file.data)
	}
	return entity.InputDocument{}, nil
}

func warnEmpty(w http.ResponseWriter, logger *slog.Logger) {
	metrics.RecordEmptyInput()
	logger.Info("summarization skipped: empty input")
	respond.Warning(w, entity.EmptyInputWarning)
}
