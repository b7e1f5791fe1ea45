package wizard

import (
	"sync"
	"time"

	"vendor_listing/internal/domain/entities"
)

// Session binds one Controller to the profile it edits. Hosts that serve several callers
// hold the session lock around every controller call, which keeps the controller's single
// writer guarantee.
type Session struct {
	ID         string
	ProfileID  string
	Controller *Controller
	CreatedAt  time.Time
	LastActive time.Time

	// StoredStatus is the status last read from or written to storage; empty until the
	// profile is first saved.
	StoredStatus entities.ProfileStatus

	// LastPreview is the draft most recently handed to the preview collaborator.
	LastPreview *entities.Profile

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

func (s *Session) TryLock() bool { return s.mu.TryLock() }

// Expired reports whether the session has been idle for longer than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.Sub(s.LastActive) > ttl
}
