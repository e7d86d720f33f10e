package validator

import (
	"context"
	"fmt"

	"github.com/ssrini14/N-Queen/internal/domain"
)

// MaskValidator flags queens that attack along a shared column or diagonal.
// Each constraint line gets one bit: columns in a 32-bit mask, the 2n-1
// diagonals of each direction in 64-bit masks indexed by row+col and
// row-col+n-1. A bit seen twice marks the later queen as conflicting.
type MaskValidator struct{}

func New() *MaskValidator { return &MaskValidator{} }

func (v *MaskValidator) Validate(ctx context.Context, n int, p domain.Placement) (bool, []domain.Cell, error) {
	if n < 1 || n > 32 {
		return false, nil, fmt.Errorf("invalid board size %d (want 1..32)", n)
	}
	if len(p) > n {
		return false, nil, fmt.Errorf("placement has %d rows for a %d-board", len(p), n)
	}
	conf := make([]domain.Cell, 0, 4)
	var cols uint32
	var diagL, diagR uint64
	for r, c := range p {
		if c < 0 || c >= n {
			return false, nil, fmt.Errorf("row %d: column %d out of range 0..%d", r, c, n-1)
		}
		cb := uint32(1) << c
		lb := uint64(1) << (c - r + n - 1) // left diagonal: attacked column grows per row
		rb := uint64(1) << (r + c)         // right diagonal: attacked column shrinks per row
		if cols&cb != 0 || diagL&lb != 0 || diagR&rb != 0 {
			conf = append(conf, domain.Cell{Row: r, Col: c})
		}
		cols |= cb
		diagL |= lb
		diagR |= rb
	}
	return len(conf) == 0, conf, nil
}
