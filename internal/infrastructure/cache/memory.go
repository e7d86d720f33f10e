package cache

import (
	"context"
	"sync"

	"github.com/ssrini14/N-Queen/internal/domain"
)

// Memory holds complete solution sets keyed by board size. A Put for an
// existing size overwrites the previous set. Nothing is persisted; the
// cache lives and dies with the process.
type Memory struct {
	mu   sync.RWMutex
	sets map[int][]domain.Placement
}

func NewMemory() *Memory {
	return &Memory{sets: make(map[int][]domain.Placement)}
}

func (m *Memory) Get(ctx context.Context, n int) ([]domain.Placement, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sols, ok := m.sets[n]
	return sols, ok, nil
}

// Put stores sols for n. The slice is kept as given; callers treat cached
// solution sets as read-only.
func (m *Memory) Put(ctx context.Context, n int, sols []domain.Placement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[n] = sols
	return nil
}
