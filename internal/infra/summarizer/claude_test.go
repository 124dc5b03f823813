package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-summarizer/internal/config"
	"text-summarizer/internal/infra/summarizer"
)

func TestClaude_Generate(t *testing.T) {
	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		System    []struct {
			Text string `json:"text"`
		} `json:"system"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-5-20250929",
			"content":[{"type":"text","text":"A fox jumps."}],"stop_reason":"end_turn",
			"usage":{"input_tokens":12,"output_tokens":4}}`))
	}))
	defer server.Close()

	gen := summarizer.NewClaude(config.ClaudeConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-5-20250929", BaseURL: server.URL},
		time.Second, testOptions(t, &fakeMetrics{}))

	out, err := gen.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "A fox jumps.", out)
	assert.Equal(t, 45, got.MaxTokens)
	require.Len(t, got.System, 1)
	assert.Contains(t, got.System[0].Text, "4 to 34 words")
}

func TestClaude_Generate_ServerErrorIsRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"Internal server error"}}`))
	}))
	defer server.Close()

	gen := summarizer.NewClaude(config.ClaudeConfig{APIKey: "sk-ant-test", Model: "m", BaseURL: server.URL},
		time.Second, testOptions(t, &fakeMetrics{}))

	_, err := gen.Generate(context.Background(), testRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.Equal(t, 3, calls)
}
