// Package http provides the HTTP middleware and probe handlers of the
// summarizer service. Feature handlers live in subpackages.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"text-summarizer/internal/handler/http/respond"
	"text-summarizer/internal/usecase/summarize"
)

// GeneratorChecker reports generator health.
type GeneratorChecker interface {
	Health(ctx context.Context) (*summarize.HealthStatus, error)
	Backend() string
}

// Counter reports a size, such as the number of stored downloads.
type Counter interface {
	Len() int
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler probes the generator and reports download store usage.
// It answers 503 when the generator is unhealthy.
type HealthHandler struct {
	Generator GeneratorChecker
	Downloads Counter
	Version   string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.Generator != nil {
		check := checkGenerator(ctx, h.Generator)
		checks["generator"] = check
		allHealthy = check.Status == "healthy"
	} else {
		checks["generator"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	if h.Downloads != nil {
		checks["downloads"] = CheckStatus{
			Status:  "healthy",
			Details: map[string]any{"stored": h.Downloads.Len()},
		}
	}

	status, code := "healthy", http.StatusOK
	if !allHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func checkGenerator(ctx context.Context, gen GeneratorChecker) CheckStatus {
	details := map[string]any{"backend": gen.Backend()}

	hs, err := gen.Health(ctx)
	if err != nil {
		return CheckStatus{Status: "unhealthy", Message: respond.SanitizeError(err), Details: details}
	}
	if hs == nil {
		return CheckStatus{Status: "unhealthy", Message: "no status", Details: details}
	}

	details["circuit_open"] = hs.CircuitOpen
	if hs.Latency > 0 {
		details["latency_ms"] = hs.Latency.Milliseconds()
	}
	if !hs.Healthy {
		return CheckStatus{Status: "unhealthy", Message: hs.Message, Details: details}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler reports readiness for traffic. Only an open circuit breaker
// makes the service unready; a slow or flaky generator still gets traffic.
type ReadyHandler struct {
	Generator GeneratorChecker
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Generator == nil {
		http.Error(w, "generator not configured", http.StatusServiceUnavailable)
		return
	}

	hs, err := h.Generator.Health(ctx)
	if err == nil && hs != nil && hs.CircuitOpen {
		http.Error(w, "generator circuit breaker open", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		slog.Warn("ready: failed to write response", slog.Any("error", err))
	}
}

// LiveHandler answers 200 while the process can serve requests.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		slog.Warn("alive: failed to write response", slog.Any("error", err))
	}
}
