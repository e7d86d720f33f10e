package hint

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/render"
)

// Steps narrates a placement prefix for the step-through panel and lists
// the columns of the next row that no placed queen reaches.
type Steps struct{}

func NewSteps() *Steps { return &Steps{} }

// Hint returns the safe columns of row len(prefix) together with a
// narration of the queen placed last. An empty prefix narrates the empty
// board; a full prefix reports completion and no further columns.
func (h *Steps) Hint(ctx context.Context, n int, prefix domain.Placement) ([]int, domain.StepInfo, error) {
	if n < 1 || n > 32 {
		return nil, domain.StepInfo{}, fmt.Errorf("invalid board size %d (want 1..32)", n)
	}
	if len(prefix) > n {
		return nil, domain.StepInfo{}, fmt.Errorf("prefix has %d rows for a %d-board", len(prefix), n)
	}
	row := len(prefix)

	// re-derive the three attack lines of the placed queens at this row
	var unsafe uint32
	for r, c := range prefix {
		if c < 0 || c >= n {
			return nil, domain.StepInfo{}, fmt.Errorf("row %d: column %d out of range 0..%d", r, c, n-1)
		}
		d := row - r
		unsafe |= 1 << c
		if c+d < n {
			unsafe |= 1 << (c + d) // left diagonal, one column over per row
		}
		if c-d >= 0 {
			unsafe |= 1 << (c - d) // right diagonal
		}
	}

	var cols []int
	if row < n {
		avail := (uint32(1)<<n - 1) &^ unsafe
		for avail != 0 {
			cols = append(cols, bits.TrailingZeros32(avail&-avail))
			avail &= avail - 1
		}
	}

	info := domain.StepInfo{Step: row - 1, Remaining: n - row, Done: row == n}
	switch {
	case row == 0:
		info.Message = "Empty board: no queens placed yet."
	case row == n:
		info.Message = fmt.Sprintf("Place queen on row %d, column %d (square %s). All queens placed, solution complete!",
			row, prefix[row-1]+1, render.Square(row-1, prefix[row-1]))
	default:
		info.Message = fmt.Sprintf("Place queen on row %d, column %d (square %s). %d queens remaining.",
			row, prefix[row-1]+1, render.Square(row-1, prefix[row-1]), n-row)
	}
	return cols, info, nil
}
