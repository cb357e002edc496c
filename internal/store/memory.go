package store

import "sync"

// Memory is an in-memory store for testing.
type Memory struct {
	mu       sync.RWMutex
	programs map[string]string
	metadata map[string]string
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{
		programs: make(map[string]string),
		metadata: make(map[string]string),
	}
}

// Get retrieves a program source by name.
func (m *Memory) Get(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.programs[name], nil
}

// Put stores a program source by name.
func (m *Memory) Put(name, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.programs[name] = source
	return nil
}

// Delete removes a program by name.
func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.programs, name)
	return nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}

// GetMetadata retrieves a metadata value by key.
func (m *Memory) GetMetadata(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[key], nil
}

// SetMetadata stores a metadata value by key.
func (m *Memory) SetMetadata(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadata[key] = value
	return nil
}
