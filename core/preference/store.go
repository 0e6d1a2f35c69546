package preference

import (
	"context"
	"sync"
)

// Key is the storage key under which the preferred locale is kept.
const Key = "preferredLang"

// Store persists the locale a user explicitly chose.
// Load returns "" when nothing was stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, code string) error
}

// Memory keeps the preference in process memory. Safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	value string
}

// NewMemory returns a store holding initial ("" for none).
func NewMemory(initial string) *Memory {
	return &Memory{value: initial}
}

// Load implements Store.
func (m *Memory) Load(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.value, nil
}

// Save implements Store. Last write wins.
func (m *Memory) Save(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = code
	return nil
}
