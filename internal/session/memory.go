package session

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/unanda-ft/faqbot/internal/errors"
)

// MemoryStore keeps session state in process memory. Used in tests
// and as a fallback when no data directory is writable.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	state     *State
	updatedAt time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

// Get loads one session state.
func (m *MemoryStore) Get(_ context.Context, id string) (*State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.sessions[id]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return entry.state.Clone(), nil
}

// Put upserts one session state.
func (m *MemoryStore) Put(_ context.Context, id string, state *State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = memoryEntry{state: state.Clone(), updatedAt: time.Now()}
	return nil
}

// Delete removes one session.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Count returns the number of stored sessions.
func (m *MemoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions), nil
}

// PurgeExpired removes sessions idle for longer than ttl.
func (m *MemoryStore) PurgeExpired(_ context.Context, ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	var purged int64
	for id, entry := range m.sessions {
		if entry.updatedAt.Before(cutoff) {
			delete(m.sessions, id)
			purged++
		}
	}
	return purged, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
