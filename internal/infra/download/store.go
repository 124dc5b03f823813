// Package download keeps generated summaries in memory for a limited time so
// they can be fetched as summary.txt.
package download

import (
	"context"
	"sync"
	"time"

	"text-summarizer/internal/domain/entity"
	"text-summarizer/internal/observability/metrics"
	"text-summarizer/internal/usecase/summarize"
)

type entry struct {
	summary   entity.Summary
	expiresAt time.Time
}

// Store is an in-memory summarize.Store with per-entry expiry.
// Nothing is persisted; a restart drops every entry.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store keeping summaries for ttl.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save implements summarize.Store.
func (s *Store) Save(_ context.Context, summary entity.Summary) error {
	s.mu.Lock()
	s.entries[summary.ID] = entry{summary: summary, expiresAt: s.now().Add(s.ttl)}
	n := len(s.entries)
	s.mu.Unlock()

	metrics.UpdateDownloadsStored(n)
	return nil
}

// Get implements summarize.Store. Expired entries are reported as missing
// even before the purger removes them.
func (s *Store) Get(_ context.Context, id string) (entity.Summary, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(e.expiresAt) {
		return entity.Summary{}, summarize.ErrSummaryNotFound
	}
	return e.summary, nil
}

// Purge removes expired entries and returns how many were removed.
func (s *Store) Purge() int {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	n := len(s.entries)
	s.mu.Unlock()

	metrics.UpdateDownloadsStored(n)
	metrics.RecordDownloadsPurged(removed)
	return removed
}

// Len returns the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
