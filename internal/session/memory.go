package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory.  It is the fallback when no
// Redis server is reachable and is what the tests use.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session *Session
	expires time.Time
}

// NewMemoryStore returns a store whose sessions expire ttl after their last
// write.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.entries[s.ID] = memoryEntry{session: s, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.liveLocked(id)
	if !ok {
		return nil, ErrNotFound
	}
	return e.session, nil
}

func (m *MemoryStore) Update(_ context.Context, id string, fn func(*Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.liveLocked(id)
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(e.session); err != nil {
		return nil, err
	}
	e.expires = m.now().Add(m.ttl)
	m.entries[id] = e
	return e.session, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Len reports the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	return len(m.entries)
}

func (m *MemoryStore) liveLocked(id string) (memoryEntry, bool) {
	e, ok := m.entries[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !m.now().Before(e.expires) {
		delete(m.entries, id)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemoryStore) sweepLocked() {
	now := m.now()
	for id, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, id)
		}
	}
}
