package store

import "sync"

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]int64),
	}
}

func (m *MemoryStore) Get(key string) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key string, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Raise(key string, value int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if current, ok := m.values[key]; ok && current >= value {
		return current, nil
	}
	m.values[key] = value
	return value, nil
}
