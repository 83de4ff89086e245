package store

import "sync"

// MemoryKV is a process-local KV. It is used in tests and for the memory
// driver.
type MemoryKV struct {
	data map[string][]byte
	// SetErr, when non-nil, is returned by every Set call to simulate a full
	// or disabled storage area.
	SetErr error
	mu     sync.Mutex
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}

	m.data[key] = append([]byte(nil), value...)

	return nil
}

func (m *MemoryKV) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

func (m *MemoryKV) Close() error {
	return nil
}
