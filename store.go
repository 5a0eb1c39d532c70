package pinview

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory Store. It is useful for tests and for
// collecting the initial state that is serialized into a page.
//
// MemoryStore is safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]any)}
}

// Get returns the value at key, or def when it is not set.
func (m *MemoryStore) Get(key string, def any) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// Lookup returns the value at key and whether it is set.
func (m *MemoryStore) Lookup(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value at key.
func (m *MemoryStore) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// SetTrue stores true at key.
func (m *MemoryStore) SetTrue(key string) {
	m.Set(key, true)
}

// SetFalse stores false at key.
func (m *MemoryStore) SetFalse(key string) {
	m.Set(key, false)
}

// Toggle negates the boolean at key. A missing or non-boolean value
// becomes true.
func (m *MemoryStore) Toggle(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, _ := m.values[key].(bool)
	m.values[key] = !current
}

// Keys returns the stored keys in sorted order.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
