package store

import (
	"sync"

	"github.com/MKhiriev/go-transcript-keeper/models"
)

type memoryRecordStore struct {
	mu       sync.RWMutex
	records  []models.Record
	index    map[string]int
	revision uint64
}

// NewRecordStore returns an empty in-memory [RecordStore].
func NewRecordStore() RecordStore {
	return &memoryRecordStore{index: make(map[string]int)}
}

// ReplaceAll swaps the collection for records, keeping their order. Readers
// see either the old or the new set, never a mix.
func (s *memoryRecordStore) ReplaceAll(records []models.Record) {
	next := make([]models.Record, len(records))
	index := make(map[string]int, len(records))
	for i, r := range records {
		next[i] = cloneRecord(r)
		index[r.ID] = i
	}

	s.mu.Lock()
	s.records = next
	s.index = index
	s.revision++
	s.mu.Unlock()
}

func (s *memoryRecordStore) GetByID(id string) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Record{}, ErrRecordNotFound
	}
	return cloneRecord(s.records[i]), nil
}

func (s *memoryRecordStore) All() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Record, len(s.records))
	for i, r := range s.records {
		out[i] = cloneRecord(r)
	}
	return out
}

func (s *memoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Revision increases with every ReplaceAll.
func (s *memoryRecordStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func cloneRecord(r models.Record) models.Record {
	if r.RevealedValue != nil {
		v := *r.RevealedValue
		r.RevealedValue = &v
	}
	return r
}
