package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		incoming  string
		wantKeep  bool
		wantValid bool
	}{
		{name: "generates when absent", incoming: "", wantKeep: false},
		{name: "propagates client id", incoming: "client-abc-123", wantKeep: true},
		{name: "rejects spaces", incoming: "bad id", wantKeep: false},
		{name: "rejects control chars", incoming: "bad\tid", wantKeep: false},
		{name: "rejects oversized", incoming: strings.Repeat("a", 129), wantKeep: false},
		{name: "accepts max length", incoming: strings.Repeat("a", 128), wantKeep: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
			if tt.wantKeep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err, "expected generated UUID, got %q", seen)
			}
		})
	}
}

func TestFromContext_Empty(t *testing.T) {
	assert.Equal(t, "", FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "r-1")
	assert.Equal(t, "r-1", FromContext(ctx))
}
