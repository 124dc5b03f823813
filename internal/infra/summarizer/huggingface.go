package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"text-summarizer/internal/config"
	"text-summarizer/internal/resilience/retry"
	"text-summarizer/internal/usecase/summarize"
)

// maxResponseBytes bounds how much of an inference response is read.
const maxResponseBytes = 1 << 20

// HuggingFace calls a text2text inference endpoint serving a summarization model.
// The decoding parameters are forwarded as-is, so the model itself enforces
// min_length and max_length.
type HuggingFace struct {
	url    string
	token  string
	model  string
	client *http.Client
	guard  *guard
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MinLength     int     `json:"min_length"`
	MaxLength     int     `json:"max_length"`
	NumBeams      int     `json:"num_beams"`
	LengthPenalty float64 `json:"length_penalty"`
	EarlyStopping bool    `json:"early_stopping"`
	Truncation    string  `json:"truncation"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText   string `json:"summary_text"`
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// NewHuggingFace creates the inference endpoint backend.
// client may be nil, in which case a client with timeout is used.
func NewHuggingFace(cfg config.HuggingFaceConfig, client *http.Client, timeout time.Duration, opts Options) *HuggingFace {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HuggingFace{
		url:    cfg.APIURL,
		token:  cfg.Token,
		model:  cfg.Model,
		client: client,
		guard:  newGuard(config.BackendHuggingFace, opts),
	}
}

// Name implements summarize.Generator.
func (h *HuggingFace) Name() string { return config.BackendHuggingFace }

// Generate implements summarize.Generator.
func (h *HuggingFace) Generate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	return h.guard.call(ctx, req.Params, func(ctx context.Context) (string, error) {
		return h.doGenerate(ctx, req)
	})
}

func (h *HuggingFace) doGenerate(ctx context.Context, req summarize.GenerateRequest) (string, error) {
	body, err := json.Marshal(hfRequest{
		Inputs: req.Prompt,
		Parameters: hfParameters{
			MinLength:     req.Params.MinLength,
			MaxLength:     req.Params.MaxLength,
			NumBeams:      req.Params.NumBeams,
			LengthPenalty: req.Params.LengthPenalty,
			EarlyStopping: req.Params.EarlyStopping,
			Truncation:    "only_first",
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return "", fmt.Errorf("marshal inference request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create inference request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if h.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("inference request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read inference response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", hfStatusError(resp, data)
	}

	var summaries []hfSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return "", fmt.Errorf("decode inference response: %w", err)
	}
	if len(summaries) == 0 {
		return "", fmt.Errorf("inference endpoint: %w", errEmptyResponse)
	}
	out := summaries[0].SummaryText
	if out == "" {
		out = summaries[0].GeneratedText
	}
	return out, nil
}

// hfStatusError builds a retry.HTTPError, taking the retry hint from
// Retry-After or, for a loading model, from estimated_time.
func hfStatusError(resp *http.Response, data []byte) error {
	httpErr := &retry.HTTPError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(data)),
		RetryAfter: retry.ParseRetryAfter(resp.Header),
	}
	var body hfError
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		httpErr.Message = body.Error
		if httpErr.RetryAfter == 0 && body.EstimatedTime > 0 {
			httpErr.RetryAfter = time.Duration(body.EstimatedTime * float64(time.Second))
		}
	}
	if len(httpErr.Message) > 200 {
		httpErr.Message = httpErr.Message[:200]
	}
	return httpErr
}

// Health implements summarize.Generator. Any answer below 500 means the
// endpoint is reachable; inference endpoints reject GET with 405.
func (h *HuggingFace) Health(ctx context.Context) (*summarize.HealthStatus, error) {
	return h.guard.health(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
		if err != nil {
			return err
		}
		if h.token != "" {
			req.Header.Set("Authorization", "Bearer "+h.token)
		}
		resp, err := h.client.Do(req)
		if err != nil {
			return err
		}
		_ = resp.Body.Close()
		if resp.StatusCode >= 500 {
			return fmt.Errorf("inference endpoint returned %d", resp.StatusCode)
		}
		return nil
	})
}
