package solver

import (
	"context"
	"math/bits"
	"time"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/ports"
)

// BitmaskSolver enumerates solutions with three per-row attack masks.
// State when entering row r: cols  - columns holding a queen in rows 0..r-1
//                            ld    - columns under left-diagonal attack at row r
//                            rd    - columns under right-diagonal attack at row r
// The candidate columns of a row are the zero bits of cols|ld|rd, computed
// with a single AND against the n-bit board mask. Descending one row shifts
// ld left and rd right by one bit, tracking how a diagonal threat moves one
// column per row. All three masks are passed by value, so returning from a
// call restores them implicitly; only the placement buffer needs a pop.
type BitmaskSolver struct{}

func NewBitmaskSolver() *BitmaskSolver { return &BitmaskSolver{} }

func (s *BitmaskSolver) Solve(ctx context.Context, n int) ([]domain.Placement, ports.Stats, error) {
	start := time.Now()
	if err := checkSize(n); err != nil {
		return nil, ports.Stats{}, err
	}
	full := uint32(1)<<n - 1
	sols := []domain.Placement{}
	cur := make(domain.Placement, 0, n)
	nodes := 0

	var dfs func(row int, cols, ld, rd uint32) error
	dfs = func(row int, cols, ld, rd uint32) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if row == n {
			sols = append(sols, append(domain.Placement(nil), cur...))
			return nil
		}
		avail := full &^ (cols | ld | rd)
		for avail != 0 {
			bit := avail & -avail // lowest set bit = next candidate column
			avail &= avail - 1
			nodes++
			cur = append(cur, bits.TrailingZeros32(bit))
			err := dfs(row+1, cols|bit, ((ld|bit)<<1)&full, (rd|bit)>>1)
			cur = cur[:len(cur)-1]
			if err != nil {
				return err
			}
		}
		return nil
	}
	if err := dfs(0, 0, 0, 0); err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	return sols, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
