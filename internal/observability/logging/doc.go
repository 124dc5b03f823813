// Package logging provides structured logging utilities with context propagation.
//
// The server logs JSON to stdout; the CLI logs text to stderr so stdout stays
// free for the summary itself. Request-scoped loggers carry request_id and,
// when a span is active, trace_id.
//
//	logger := logging.NewLogger()
//	slog.SetDefault(logger)
//
//	log := logging.ForRequest(r.Context(), slog.Default())
//	log.Info("summary generated", slog.Int("summary_words", n))
package logging
