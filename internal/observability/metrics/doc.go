// Package metrics provides Prometheus metrics for the summarization pipeline.
//
// Metrics are registered with the default registry through promauto and
// exposed via the /metrics endpoint. HTTP request metrics live next to the
// HTTP middleware; this package covers the pipeline itself:
//   - summaries generated, by outcome and mode
//   - generation latency and input/summary sizes
//   - text extraction by input kind
//   - article URL fetches
//   - the in-memory download store
//
// Example usage:
//
//	start := time.Now()
//	summary, err := svc.Summarize(ctx, doc, opts)
//	metrics.RecordSummary(err == nil, opts.ThreeLines, time.Since(start))
package metrics
