package summary

import (
	"net/http"

	"text-summarizer/internal/usecase/summarize"
)

// Service is what the handlers need from the summarization use case.
type Service interface {
	Summarizer
	Lookup
}

// Config carries the collaborators and wrappers for Register.
type Config struct {
	Files FileExtractor
	// URLs may be nil to disable article URLs.
	URLs URLFetcher

	Profile        summarize.DecodingProfile
	MaxUploadBytes int64
	// AuthRequired reports that Create enforces bearer tokens.
	AuthRequired bool

	// Create wraps summary creation, typically with rate limiting. May be nil.
	Create func(http.Handler) http.Handler
	// Light wraps the cheap routes, typically with a timeout. May be nil.
	Light func(http.Handler) http.Handler
}

// Register registers the form, options, create and download routes.
func Register(mux *http.ServeMux, svc Service, cfg Config) error {
	ui, err := NewUIHandler(cfg.AuthRequired)
	if err != nil {
		return err
	}

	light := cfg.Light
	if light == nil {
		light = identity
	}
	create := cfg.Create
	if create == nil {
		create = identity
	}

	mux.Handle("GET /{$}", light(ui))
	mux.Handle("GET /api/options", light(OptionsHandler{
		Profile:        cfg.Profile,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AuthRequired:   cfg.AuthRequired,
	}))
	mux.Handle("POST /api/summaries", create(CreateHandler{
		Svc:   svc,
		Files: cfg.Files,
		URLs:  cfg.URLs,
	}))
	mux.Handle("GET /api/summaries/{id}/download", light(DownloadHandler{Svc: svc}))
	return nil
}

func identity(h http.Handler) http.Handler { return h }
