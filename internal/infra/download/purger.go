package download

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// StartPurger schedules store.Purge on a standard 5-field cron spec.
// Callers stop the scheduler with the returned cron's Stop.
func StartPurger(store *Store, schedule string, logger *slog.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		removed := store.Purge()
		if removed > 0 {
			logger.Info("expired downloads purged",
				slog.Int("removed", removed),
				slog.Int("remaining", store.Len()))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule download purge %q: %w", schedule, err)
	}
	c.Start()
	logger.Info("download purger started", slog.String("schedule", schedule))
	return c, nil
}
