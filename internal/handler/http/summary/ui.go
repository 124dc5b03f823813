package summary

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/infra/extract"
	"text-summarizer/pkg/security/csp"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must(template.ParseFS(templates, "templates/index.html"))

var pagePolicy = csp.PagePolicy()

type pageData struct {
	Tones   []string
	Min     int
	Max     int
	Default int
	Accept  string
	Auth    bool
}

// UIHandler serves the single-page form at /.
type UIHandler struct {
	page []byte
}

// NewUIHandler renders the form once. With authRequired the form asks for a
// bearer token and sends it with every summary request.
func NewUIHandler(authRequired bool) (*UIHandler, error) {
	tones := entity.Tones()
	data := pageData{
		Tones:   make([]string, len(tones)),
		Min:     entity.MinTargetWords,
		Max:     entity.MaxTargetWords,
		Default: entity.DefaultTargetWords,
		Auth:    authRequired,
	}
	for i, t := range tones {
		data.Tones[i] = t.String()
	}
	exts := make([]string, 0, 4)
	for _, ft := range extract.FileTypes() {
		exts = append(exts, ft.Extension)
	}
	data.Accept = strings.Join(exts, ",")

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render index page: %w", err)
	}
	return &UIHandler{page: buf.Bytes()}, nil
}

func (h *UIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	pagePolicy.Apply(w.Header())
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(h.page)
	}
}
