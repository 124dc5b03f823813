package summarizer_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"text-summarizer/internal/config"
	"text-summarizer/internal/infra/summarizer"
	"text-summarizer/internal/resilience/circuitbreaker"
	"text-summarizer/internal/resilience/retry"
	"text-summarizer/internal/usecase/summarize"
)

/* ───────── helpers ───────── */

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes []string
	within   []bool
}

func (f *fakeMetrics) RecordCall(_, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
}

func (f *fakeMetrics) RecordOutputTokens(string, int) {}

func (f *fakeMetrics) RecordBoundsCompliance(_ string, within bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.within = append(f.within, within)
}

func testOptions(t *testing.T, m *fakeMetrics) summarizer.Options {
	t.Helper()
	return summarizer.Options{
		RateLimit: 1000,
		RateBurst: 100,
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
		Breaker: circuitbreaker.Config{
			Name:             "test-" + t.Name(),
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			FailureThreshold: 0.5,
			MinRequests:      3,
		},
		Metrics: m,
	}
}

func testRequest() summarize.GenerateRequest {
	return summarize.GenerateRequest{
		Prompt: "Summarize in a formal tone: The quick brown fox jumps over the lazy dog.",
		Params: summarize.GenerationParams{
			MinLength:      5,
			MaxLength:      45,
			NumBeams:       4,
			LengthPenalty:  2.0,
			EarlyStopping:  true,
			MaxInputTokens: 1024,
		},
	}
}

/* ───────── Hugging Face ───────── */

func TestHuggingFace_Generate_ForwardsParameters(t *testing.T) {
	var got map[string]any
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"summary_text":"A fox jumps over a dog in a quick and formal manner."}]`))
	}))
	defer server.Close()

	m := &fakeMetrics{}
	hf := summarizer.NewHuggingFace(config.HuggingFaceConfig{APIURL: server.URL, Token: "hf_secret"}, server.Client(), time.Second, testOptions(t, m))

	out, err := hf.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "A fox jumps over a dog in a quick and formal manner.", out)
	assert.Equal(t, "Bearer hf_secret", auth)

	assert.Equal(t, testRequest().Prompt, got["inputs"])
	params := got["parameters"].(map[string]any)
	assert.EqualValues(t, 5, params["min_length"])
	assert.EqualValues(t, 45, params["max_length"])
	assert.EqualValues(t, 4, params["num_beams"])
	assert.EqualValues(t, 2.0, params["length_penalty"])
	assert.Equal(t, true, params["early_stopping"])
	assert.Equal(t, "only_first", params["truncation"])
	assert.Equal(t, []string{"success"}, m.outcomes)
	assert.Equal(t, []bool{true}, m.within)
}

func TestHuggingFace_Generate_RetriesWhileModelLoads(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"Model is currently loading","estimated_time":0.001}`))
			return
		}
		_, _ = w.Write([]byte(`[{"summary_text":"done"}]`))
	}))
	defer server.Close()

	hf := summarizer.NewHuggingFace(config.HuggingFaceConfig{APIURL: server.URL}, server.Client(), time.Second, testOptions(t, &fakeMetrics{}))

	out, err := hf.Generate(context.Background(), testRequest())
	require.NoError(t, err)
	assert.Equal(t, "done", out)
	assert.Equal(t, int32(2), calls.Load())
}

func TestHuggingFace_Generate_Errors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantCalls     int32
		wantErrString string
	}{
		{
			name:          "bad request is not retried",
			status:        http.StatusBadRequest,
			body:          `{"error":"inputs must be a string"}`,
			wantCalls:     1,
			wantErrString: "HTTP 400: inputs must be a string",
		},
		{
			name:          "server error exhausts retries",
			status:        http.StatusInternalServerError,
			body:          `boom`,
			wantCalls:     3,
			wantErrString: "max retry attempts (3) exceeded",
		},
		{
			name:          "empty result list",
			status:        http.StatusOK,
			body:          `[]`,
			wantCalls:     1,
			wantErrString: "empty response",
		},
		{
			name:          "malformed json",
			status:        http.StatusOK,
			body:          `{"summary_text":`,
			wantCalls:     1,
			wantErrString: "decode inference response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			m := &fakeMetrics{}
			hf := summarizer.NewHuggingFace(config.HuggingFaceConfig{APIURL: server.URL}, server.Client(), time.Second, testOptions(t, m))

			_, err := hf.Generate(context.Background(), testRequest())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrString)
			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, []string{"failure"}, m.outcomes)
		})
	}
}

func TestHuggingFace_Generate_OpenBreakerIsUnavailable(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	m := &fakeMetrics{}
	hf := summarizer.NewHuggingFace(config.HuggingFaceConfig{APIURL: server.URL}, server.Client(), time.Second, testOptions(t, m))

	// Three failed attempts reach MinRequests and trip the breaker.
	_, err := hf.Generate(context.Background(), testRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, summarize.ErrGeneratorUnavailable)

	_, err = hf.Generate(context.Background(), testRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, summarize.ErrGeneratorUnavailable)
	assert.ErrorIs(t, err, summarizer.ErrCircuitOpen)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []string{"failure", "rejected"}, m.outcomes)

	status, err := hf.Health(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Healthy)
	assert.True(t, status.CircuitOpen)
}

func TestHuggingFace_Health(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantHealthy bool
	}{
		{"method not allowed is reachable", http.StatusMethodNotAllowed, true},
		{"ok", http.StatusOK, true},
		{"server error", http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			hf := summarizer.NewHuggingFace(config.HuggingFaceConfig{APIURL: server.URL}, server.Client(), time.Second, testOptions(t, &fakeMetrics{}))
			status, err := hf.Health(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantHealthy, status.Healthy)
			assert.False(t, status.CircuitOpen)
		})
	}
}

/* ───────── NoOp ───────── */

func TestNoOp_Generate(t *testing.T) {
	req := testRequest()
	req.Params.MaxLength = 4 // three words

	out, err := summarizer.NoOp{}.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Summarize in a", out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = summarizer.NoOp{}.Generate(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)
}

/* ───────── factory ───────── */

func TestNew_SelectsBackend(t *testing.T) {
	base := config.SummarizerConfig{
		HuggingFace:   config.HuggingFaceConfig{APIURL: "http://localhost:1/model"},
		OpenAI:        config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
		Claude:        config.ClaudeConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-5-20250929"},
		Timeout:       time.Second,
		RateLimit:     1,
		RateBurst:     1,
		RetryAttempts: 1,
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, FailureThreshold: 0.5, MinRequests: 1,
		},
	}

	for _, backend := range []string{config.BackendHuggingFace, config.BackendOpenAI, config.BackendClaude, config.BackendNoop} {
		t.Run(backend, func(t *testing.T) {
			cfg := base
			cfg.Backend = backend
			gen, err := summarizer.New(&cfg)
			require.NoError(t, err)
			assert.Equal(t, backend, gen.Name())
		})
	}

	cfg := base
	cfg.Backend = "gpt2"
	_, err := summarizer.New(&cfg)
	assert.Error(t, err)
}
