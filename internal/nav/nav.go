package nav

import (
	"math/rand"
	"sync"

	"github.com/ssrini14/N-Queen/internal/domain"
)

// Clamped moves an index over a solution list, never leaving 0..total-1.
// Random jumps come from a seeded source so runs are reproducible.
type Clamped struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed int64) *Clamped {
	return &Clamped{rng: rand.New(rand.NewSource(seed))}
}

func (c *Clamped) Navigate(total, index int, dir domain.Direction) int {
	if total <= 0 {
		return 0
	}
	// clamp a stale or hand-edited index before moving
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}
	switch dir {
	case domain.First:
		return 0
	case domain.Last:
		return total - 1
	case domain.Prev:
		if index > 0 {
			return index - 1
		}
		return 0
	case domain.Next:
		if index < total-1 {
			return index + 1
		}
		return total - 1
	case domain.Random:
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.rng.Intn(total)
	}
	return index
}
