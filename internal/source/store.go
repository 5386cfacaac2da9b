package source

import (
	"sync"
	"time"

	"CCIPulse/internal/model"
)

// Store owns the canonical series for the process. The refresh scheduler
// replaces it wholesale; HTTP requests read a snapshot. Derived data is never
// written back.
type Store struct {
	mu        sync.RWMutex
	series    model.Series
	updatedAt time.Time
}

// NewStore creates a Store holding the given initial series.
func NewStore(series model.Series) *Store {
	return &Store{series: series, updatedAt: time.Now()}
}

// Current returns the canonical series. Callers must treat it as read-only.
func (s *Store) Current() model.Series {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.series
}

// Replace swaps in a freshly generated series.
func (s *Store) Replace(series model.Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.series = series
	s.updatedAt = time.Now()
}

// LastRefresh reports when the canonical series was last replaced.
func (s *Store) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}
