package session

import (
	"context"
	"sync"
	"time"
)

type memoryRecord struct {
	entries   []Entry
	expiresAt time.Time
}

// MemoryStore is the single-instance fallback used when Redis is not
// configured. Expired records are dropped lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: map[string]memoryRecord{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[sessionID]
	if !ok {
		return nil, nil
	}
	if s.now().After(rec.expiresAt) {
		delete(s.records, sessionID)
		return nil, nil
	}

	out := make([]Entry, len(rec.entries))
	copy(out, rec.entries)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, entries []Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]Entry, len(entries))
	copy(stored, entries)
	s.records[sessionID] = memoryRecord{
		entries:   stored,
		expiresAt: s.now().Add(TTL),
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
