package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/summaries/3f2b8c1e-9d4a-4e7b-8a6f-1c2d3e4f5a6b/download", "/api/summaries/:id/download"},
		{"/api/summaries/3F2B8C1E-9D4A-4E7B-8A6F-1C2D3E4F5A6B/download?x=1", "/api/summaries/:id/download"},
		{"/api/summaries/not-a-uuid/download", "/api/summaries/:invalid/download"},
		{"/api/summaries", "/api/summaries"},
		{"/api/summaries/", "/api/summaries"},
		{"/api/options", "/api/options"},
		{"/swagger/index.html", "/swagger/*"},
		{"/", "/"},
		{"/health", "/health"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}

func TestParseSummaryID(t *testing.T) {
	id, err := ParseSummaryID("3F2B8C1E-9D4A-4E7B-8A6F-1C2D3E4F5A6B")
	assert.NoError(t, err)
	assert.Equal(t, "3f2b8c1e-9d4a-4e7b-8a6f-1c2d3e4f5a6b", id)

	for _, raw := range []string{"", "123", "../etc/passwd", "3f2b8c1e-9d4a-4e7b-8a6f"} {
		_, err := ParseSummaryID(raw)
		assert.ErrorIs(t, err, ErrInvalidID, raw)
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NormalizePath("/api/summaries/3f2b8c1e-9d4a-4e7b-8a6f-1c2d3e4f5a6b/download")
	}
}
