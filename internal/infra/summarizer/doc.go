// Package summarizer provides generator backends for the summarization use case.
//
// The default backend calls a Hugging Face style inference endpoint serving a
// BART summarization checkpoint and passes the decoding parameters through.
// OpenAI and Claude backends approximate the same contract with chat models,
// and NoOp echoes the leading words of the prompt for local development.
//
// Every network backend shares the same guard: a token bucket paces outbound
// calls, retries back off on transient failures, and a circuit breaker stops
// calling a backend that keeps failing.
package summarizer
