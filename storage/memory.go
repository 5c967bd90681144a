package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps records in a map. Nothing survives the process.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]string),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.records[key]
	return value, found, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = value
	return nil
}

func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.records))
	for key := range s.records {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
