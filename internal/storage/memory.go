package storage

import (
	"sync"

	"github.com/artisanhome/cartengine/internal/domain"
)

// Memory is an in-process driver for tests and the demo. Copy-in/copy-out so
// the stored slice is never shared with callers.
type Memory struct {
	mu    sync.Mutex
	items []domain.LineItem
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load() ([]domain.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.CloneItems(m.items), nil
}

func (m *Memory) Save(items []domain.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = domain.CloneItems(items)
	return nil
}
