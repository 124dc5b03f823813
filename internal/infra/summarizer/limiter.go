package summarizer

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces outbound generator calls with a token bucket.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter allows requestsPerSecond sustained calls with bursts up to burst.
// A non-positive rate disables pacing.
//
//	limiter := NewLimiter(2.0, 4) // 2 req/s, bursts of 4
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if requestsPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
