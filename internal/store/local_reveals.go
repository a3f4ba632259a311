package store

import (
	"maps"
	"sync"
)

type memoryRevealStore struct {
	mu     sync.RWMutex
	values map[string]int64
}

// NewRevealStore returns an empty [RevealStore].
func NewRevealStore() RevealStore {
	return &memoryRevealStore{values: make(map[string]int64)}
}

func (s *memoryRevealStore) Set(id string, value int64) {
	s.mu.Lock()
	s.values[id] = value
	s.mu.Unlock()
}

func (s *memoryRevealStore) Get(id string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[id]
	return v, ok
}

func (s *memoryRevealStore) Delete(id string) {
	s.mu.Lock()
	delete(s.values, id)
	s.mu.Unlock()
}

func (s *memoryRevealStore) Snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}
