package kvstore

import (
	"context"
	"sync"

	"github.com/ndeen17/udehglobal-shoe-showcase-sub001/internal/core/ports"
)

// Memory is a map-backed store: the test fake, also selectable via config
// for ephemeral runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// FailWrites makes Set and Remove fail, for exercising the
	// absorb-and-log failure policy in tests.
	FailWrites error
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }

// Len reports the number of stored keys, for test assertions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
