// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware starts one server span per request and names it after
// the matched route pattern once routing has happened. Use StartSpan for
// internal operations such as text extraction or generation:
//
//	ctx, span := tracing.StartSpan(ctx, "summarize.generate")
//	defer span.End()
package tracing
