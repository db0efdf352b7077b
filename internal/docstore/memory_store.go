package docstore

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore - хранилище в памяти. Используется в тестах и как
// fallback, когда DATABASE_URL не задан (приложение остается живым,
// /test сообщает о состоянии БД).
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Record),
	}
}

func (s *MemoryStore) Create(_ context.Context, collection string, record Record) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := Record{}
	for k, v := range record {
		stored[k] = v
	}
	id := uuid.NewString()
	stored["id"] = id
	stored["created_at"] = time.Now().UTC()

	s.collections[collection] = append(s.collections[collection], stored)
	return id, nil
}

func (s *MemoryStore) Find(_ context.Context, collection string, filter Record, limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.collections[collection]
	records := make([]Record, 0, len(stored))

	// Порядок вставки хранится, отдаем новые первыми
	for i := len(stored) - 1; i >= 0; i-- {
		if !matches(stored[i], filter) {
			continue
		}
		rec := Record{}
		for k, v := range stored[i] {
			rec[k] = v
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}

	return records, nil
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

func (s *MemoryStore) Name() string { return "memory" }

func matches(record, filter Record) bool {
	for key, want := range filter {
		got, ok := record[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
