package kv

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store used by tests and local development.
// GetByPrefix returns documents in ascending key order, which for generated
// ids means ascending creation time.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *MemoryStore) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	values := make([]json.RawMessage, 0, len(keys))
	for _, k := range keys {
		values = append(values, m.data[k])
	}
	return values, nil
}
