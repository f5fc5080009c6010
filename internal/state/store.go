package state

import (
	"sync"
	"time"

	"github.com/five82/curtain/internal/splash"
)

// Snapshot represents the latest splash status visible outside the UI loop.
type Snapshot struct {
	Status      splash.Status
	HasStatus   bool
	LastUpdated time.Time
	Transitions int // Number of status updates received
}

// IsAnimating reports whether the splash animation is still running. A store
// that never received a status reports false.
func (s Snapshot) IsAnimating() bool {
	return s.HasStatus && s.Status.Animating
}

// Visible reports whether an overlay is attached.
func (s Snapshot) Visible() bool {
	return s.HasStatus && s.Status.State != splash.Idle
}

// Store coordinates concurrent access to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored status. It satisfies splash.Observer.
func (s *Store) Update(status splash.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Status = status
	s.snapshot.HasStatus = true
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Transitions++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}

var _ splash.Observer = (*Store)(nil)
