// Package observability groups the logging, metrics and tracing infrastructure
// shared by the HTTP server and the CLI.
//
// Subpackages:
//   - logging: slog JSON logger with request-scoped fields
//   - metrics: Prometheus metrics for the summarization pipeline
//   - tracing: OpenTelemetry tracer, HTTP middleware and span helpers
package observability
