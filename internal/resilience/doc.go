// Package resilience groups the fault tolerance helpers used around outbound
// calls to model backends and article URLs.
//
//   - circuitbreaker: gobreaker wrapper with per-backend presets and a state gauge
//   - retry: exponential backoff with jitter that honours Retry-After hints
//
// Adapters nest them as retry outside, breaker inside, so every attempt is
// counted by the breaker and an open breaker stops the retry loop at once:
//
//	err := retry.WithBackoff(ctx, retry.GenerationConfig(), func() error {
//	    _, err := cb.Execute(func() (interface{}, error) { return call(ctx) })
//	    return err
//	})
package resilience
