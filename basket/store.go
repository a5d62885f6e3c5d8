package basket

import (
	"context"
	"sync"
	"time"
)

// Store keeps baskets keyed by the basket session ID. Implementations
// make no persistence guarantee beyond the session lifetime.
type Store interface {
	Get(ctx context.Context, sessionID string) (Basket, error)
	Save(ctx context.Context, sessionID string, b Basket) error
	Clear(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	basket    Basket
	expiresAt time.Time
}

// MemoryStore is the in-process Store used by default and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (Basket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return Basket{}, nil
	}

	// Copy so callers cannot mutate the stored basket in place.
	b := make(Basket, len(entry.basket))
	for id, qty := range entry.basket {
		b[id] = qty
	}
	return b, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, b Basket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(Basket, len(b))
	for id, qty := range b {
		stored[id] = qty
	}
	s.entries[sessionID] = memoryEntry{
		basket:    stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}
