package storage

import (
	"context"
	"sync"

	"github.com/TemirB/rental-cart/internal/domain"
)

type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, session, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[compositeKey(session, key)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(_ context.Context, session, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[compositeKey(session, key)] = append([]byte(nil), value...)
	return nil
}
