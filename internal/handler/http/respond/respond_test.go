package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]string{"message": "ok"}, expectedBody: `{"message":"ok"}`},
		{name: "struct", code: http.StatusCreated, data: struct{ ID string }{ID: "abc"}, expectedBody: `{"ID":"abc"}`},
		{name: "nil", code: http.StatusNoContent, data: nil, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			JSON(rec, tt.code, tt.data)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestWarning(t *testing.T) {
	rec := httptest.NewRecorder()
	Warning(rec, "Please enter or upload some text.")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, map[string]string{"warning": "Please enter or upload some text."}, decode(t, rec))
}

func TestSafeError(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		err     error
		wantMsg string
	}{
		{name: "validation message passes", code: http.StatusBadRequest, err: errors.New("length must be between 30 and 200"), wantMsg: "length must be between 30 and 200"},
		{name: "unsupported type passes", code: http.StatusUnsupportedMediaType, err: errors.New("unsupported file type: \"a.odt\""), wantMsg: "unsupported file type: \"a.odt\""},
		{name: "unknown message hidden", code: http.StatusBadRequest, err: errors.New("dial tcp 10.0.0.1:443: refused"), wantMsg: "internal server error"},
		{name: "5xx always hidden", code: http.StatusBadGateway, err: errors.New("invalid upstream payload"), wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SafeError(rec, tt.code, tt.err)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.wantMsg, decode(t, rec)["error"])
		})
	}

	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusBadRequest, nil)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestFail(t *testing.T) {
	inner := errors.New("HTTP 503: model loading, token hf_abcdefghijklmnop")
	err := fmt.Errorf("summarize: %w", NewAppError(http.StatusServiceUnavailable, "summarizer unavailable", inner))

	rec := httptest.NewRecorder()
	Fail(rec, http.StatusInternalServerError, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "summarizer unavailable", decode(t, rec)["error"])

	rec = httptest.NewRecorder()
	Fail(rec, http.StatusBadRequest, errors.New("tone is required"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "tone is required", decode(t, rec)["error"])
}

func TestAppError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := NewAppError(http.StatusBadGateway, "generation failed", sentinel)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "sentinel", err.Error())
	assert.Equal(t, "only user", NewAppError(400, "only user", nil).Error())
}
