package solver

import (
	"errors"
	"fmt"
)

// MaxSize is the largest supported board size, fixed by the width of the
// uint32 attack masks.
const MaxSize = 32

// ErrInvalidSize reports a requested board size outside 1..MaxSize.
var ErrInvalidSize = errors.New("invalid board size")

// --- helpers used by both solvers (implementations in other files) ---

func checkSize(n int) error {
	if n < 1 || n > MaxSize {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidSize, n, MaxSize)
	}
	return nil
}
