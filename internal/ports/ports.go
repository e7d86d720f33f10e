package ports

import (
	"context"
	"time"

	"github.com/ssrini14/N-Queen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver enumerates every solution for an n×n board, in depth-first
// discovery order with columns tried in increasing order.
type Solver interface {
	Solve(ctx context.Context, n int) ([]domain.Placement, Stats, error)
}

// Renderer builds a board view from the first placed rows of a placement.
type Renderer interface {
	Board(ctx context.Context, n int, p domain.Placement, placed int, showAttacks bool) (domain.BoardView, error)
}

// Navigator moves an index over a solution list, clamped at the bounds.
type Navigator interface {
	Navigate(total, index int, dir domain.Direction) int
}

// Hinter reports the safe columns of the next row for a placement prefix,
// together with a narration of the step just taken.
type Hinter interface {
	Hint(ctx context.Context, n int, prefix domain.Placement) ([]int, domain.StepInfo, error)
}

// Validator checks a (possibly partial) placement for attacking pairs.
type Validator interface {
	Validate(ctx context.Context, n int, p domain.Placement) (ok bool, conflicts []domain.Cell, err error)
}

// Cache holds complete solution sets keyed by board size.
type Cache interface {
	Get(ctx context.Context, n int) ([]domain.Placement, bool, error)
	Put(ctx context.Context, n int, sols []domain.Placement) error
}
