package summary

import (
	"context"
	"errors"
	"net/http"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/handler/http/pathutil"
	"text-summarizer/internal/handler/http/respond"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/usecase/summarize"
)

// Lookup finds a stored summary by ID.
type Lookup interface {
	Lookup(ctx context.Context, id string) (entity.Summary, error)
}

// DownloadHandler serves GET /api/summaries/{id}/download.
type DownloadHandler struct{ Svc Lookup }

// ServeHTTP downloads a summary as summary.txt
// @Summary      Download a summary
// @Description  Returns the summary text as an attachment named summary.txt.
// @Tags         summaries
// @Produce      plain
// @Param        id path string true "Summary ID (UUID)"
// @Success      200 {string} string "Summary text"
// @Failure      400 {object} map[string]string "Invalid summary ID"
// @Failure      404 {object} map[string]string "Unknown or expired summary"
// @Router       /api/summaries/{id}/download [get]
func (h DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseSummaryID(r.PathValue("id"))
	if err != nil {
		metrics.RecordDownloadServed("invalid_id")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := h.Svc.Lookup(r.Context(), id)
	if err != nil {
		if errors.Is(err, summarize.ErrSummaryNotFound) {
			metrics.RecordDownloadServed("not_found")
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics.RecordDownloadServed("ok")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="summary.txt"`)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(s.Text))
}
