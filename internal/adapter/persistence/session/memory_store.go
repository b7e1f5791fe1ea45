package session

import (
	"context"
	"sync"
	"time"

	"vendor_listing/internal/domain/wizard"
	"vendor_listing/internal/usecase/interfaces"
)

// MemoryStore holds wizard sessions in process. Sessions idle for longer than the TTL are
// dropped the next time the store is touched.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*wizard.Session
	ttl      time.Duration
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*wizard.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryStore) Put(_ context.Context, s *wizard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evictLocked()
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*wizard.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	s.Lock()
	expired := s.Expired(m.now(), m.ttl)
	s.Unlock()
	if expired {
		_ = m.Delete(context.Background(), id)
		return nil, nil
	}
	return s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports how many sessions are held, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) evictLocked() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	for id, s := range m.sessions {
		if s.TryLock() {
			expired := s.Expired(now, m.ttl)
			s.Unlock()
			if expired {
				delete(m.sessions, id)
			}
		}
	}
}
