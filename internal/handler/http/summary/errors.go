package summary

import (
	"context"
	"errors"
	"net/http"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/handler/http/respond"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/internal/usecase/summarize"
)

var (
	errUnsupportedMediaType = errors.New("unsupported content type: use multipart/form-data, application/x-www-form-urlencoded or application/json")
	errURLDisabled          = errors.New("url input is not enabled on this server")
)

// writeError maps pipeline errors to status codes and user-safe messages.
func writeError(w http.ResponseWriter, err error) {
	var ve *entity.ValidationError
	var tooLarge *http.MaxBytesError

	switch {
	case errors.As(err, &ve):
		respond.Fail(w, http.StatusBadRequest, respond.NewAppError(http.StatusBadRequest, ve.Error(), err))
	case errors.As(err, &tooLarge):
		respond.Fail(w, http.StatusRequestEntityTooLarge,
			respond.NewAppError(http.StatusRequestEntityTooLarge, "request body too large", err))
	case errors.Is(err, errUnsupportedMediaType):
		respond.Fail(w, http.StatusUnsupportedMediaType,
			respond.NewAppError(http.StatusUnsupportedMediaType, err.Error(), nil))
	case errors.Is(err, errURLDisabled):
		respond.Fail(w, http.StatusBadRequest, respond.NewAppError(http.StatusBadRequest, err.Error(), nil))

	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Fail(w, http.StatusUnsupportedMediaType,
			respond.NewAppError(http.StatusUnsupportedMediaType, "unsupported file type: upload .txt, .pdf, .docx or .html", err))
	case errors.Is(err, extract.ErrInvalidEncoding):
		respond.Fail(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, "the uploaded text file is not valid UTF-8", err))
	case errors.Is(err, extract.ErrCorruptDocument):
		respond.Fail(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, "the uploaded document could not be read", err))

	case errors.Is(err, extract.ErrPrivateIP):
		respond.Fail(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "URL resolves to a private address", err))
	case errors.Is(err, extract.ErrInvalidURL):
		respond.Fail(w, http.StatusBadRequest,
			respond.NewAppError(http.StatusBadRequest, "invalid URL: use an http or https address", err))
	case errors.Is(err, extract.ErrTooManyRedirects):
		respond.Fail(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, "the page redirected too many times", err))
	case errors.Is(err, extract.ErrBodyTooLarge):
		respond.Fail(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, "the page is too large", err))
	case errors.Is(err, extract.ErrNoContent):
		respond.Fail(w, http.StatusUnprocessableEntity,
			respond.NewAppError(http.StatusUnprocessableEntity, "the page has no readable text", err))
	case errors.Is(err, extract.ErrFetchFailed):
		respond.Fail(w, http.StatusBadGateway,
			respond.NewAppError(http.StatusBadGateway, "the page could not be fetched", err))

	case errors.Is(err, context.DeadlineExceeded):
		respond.Fail(w, http.StatusGatewayTimeout,
			respond.NewAppError(http.StatusGatewayTimeout, "summarization timed out", err))
	case errors.Is(err, summarize.ErrGeneratorUnavailable):
		respond.Fail(w, http.StatusServiceUnavailable,
			respond.NewAppError(http.StatusServiceUnavailable, "summarizer temporarily unavailable, try again later", err))
	case errors.Is(err, summarize.ErrGenerationFailed):
		respond.Fail(w, http.StatusBadGateway,
			respond.NewAppError(http.StatusBadGateway, "generation failed", err))
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		respond.Fail(w, 499, respond.NewAppError(499, "request canceled", err))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
