package http

import (
	"context"
	"log/slog"
	"time"
)

// StartRateLimitCleanup periodically drops clients idle for more than
// maxIdle until ctx is cancelled. Run it in its own goroutine.
func StartRateLimitCleanup(ctx context.Context, limiter *RateLimiter, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("rate limit cleanup started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			slog.Info("rate limit cleanup stopped")
			return
		case <-ticker.C:
			removed := limiter.Cleanup(maxIdle)
			slog.Debug("rate limit cleanup completed",
				slog.Int("removed", removed),
				slog.Int("active", limiter.Len()))
		}
	}
}
