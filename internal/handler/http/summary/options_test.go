package summary_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"text-summarizer/internal/handler/http/summary"
	"text-summarizer/internal/usecase/summarize"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(rec *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rec.Body.Bytes(), v)
}

func TestOptionsHandler(t *testing.T) {
	h := summary.OptionsHandler{Profile: summarize.DefaultProfile(), MaxUploadBytes: 1 << 20}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/options", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got summary.OptionsDTO
	require.NoError(t, decodeJSON(rec, &got))

	if diff := cmp.Diff([]string{"Default", "Formal", "Informal", "Academic", "Concise"}, got.Tones); diff != "" {
		t.Errorf("tones mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 30, got.MinLength)
	assert.Equal(t, 200, got.MaxLength)
	assert.Equal(t, 60, got.DefaultLength)
	assert.Equal(t, summary.ThreeLinesDTO{Sentences: 3, MinTokens: 30, MaxTokens: 60}, got.ThreeLines)
	assert.Equal(t, int64(1<<20), got.MaxUploadSize)
	assert.False(t, got.AuthRequired)

	exts := make([]string, 0, len(got.FileTypes))
	for _, ft := range got.FileTypes {
		exts = append(exts, ft.Extension)
	}
	assert.Equal(t, []string{".txt", ".pdf", ".docx", ".html"}, exts)
}
