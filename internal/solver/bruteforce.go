package solver

import (
	"context"
	"time"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/ports"
)

// BruteForceSolver is a straightforward recursive solver that checks each
// candidate square against every queen already placed. Column order matches
// BitmaskSolver, so both produce the same solution list.
type BruteForceSolver struct{}

func NewBruteForceSolver() *BruteForceSolver { return &BruteForceSolver{} }

// attacked reports whether a queen at (len(p), col) would be attacked by a
// queen in p.
func attacked(p domain.Placement, col int) bool {
	row := len(p)
	for r, c := range p {
		if c == col {
			return true
		}
		if d := row - r; c == col-d || c == col+d {
			return true
		}
	}
	return false
}

func (s *BruteForceSolver) Solve(ctx context.Context, n int) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	if err := checkSize(n); err != nil {
		return nil, ports.Stats{}, err
	}
	sols := []domain.Placement{}
	cur := make(domain.Placement, 0, n)
	nodes := 0

	var dfs func(row int) error
	dfs = func(row int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row == n {
			sols = append(sols, append(domain.Placement(nil), cur...))
			return nil
		}
		for col := 0; col < n; col++ {
			nodes++
			if attacked(cur, col) {
				continue
			}
			cur = append(cur, col)
			err := dfs(row + 1)
			cur = cur[:len(cur)-1]
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := dfs(0); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return sols, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
