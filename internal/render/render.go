package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/ssrini14/N-Queen/internal/domain"
)

// Boards builds UI views and ASCII boards from placements. Attack
// classification re-derives column and diagonal reach from the placed
// queens; it does not touch the search.
type Boards struct{}

func New() *Boards { return &Boards{} }

// Square returns the algebraic label of a square, file letter then
// 1-based row ("c1").
func Square(row, col int) string {
	return fmt.Sprintf("%c%d", 'a'+col, row+1)
}

// Board renders the first placed rows of p on an n×n board. placed may be
// anywhere in 0..len(p); placed == len(p) == n is the full solution and
// placed == 0 an empty board. With showAttacks every square is classified
// attacked-or-safe, otherwise non-queen squares stay empty.
func (b *Boards) Board(ctx context.Context, n int, p domain.Placement, placed int, showAttacks bool) (domain.BoardView, error) {
	if n < 1 {
		return domain.BoardView{}, fmt.Errorf("invalid board size %d", n)
	}
	if placed < 0 || placed > len(p) || placed > n {
		return domain.BoardView{}, fmt.Errorf("placed %d out of range for placement of %d rows on a %d-board", placed, len(p), n)
	}
	queens := make([]domain.Cell, 0, placed)
	labels := make([]string, 0, placed)
	for r := 0; r < placed; r++ {
		c := p[r]
		if c < 0 || c >= n {
			return domain.BoardView{}, fmt.Errorf("row %d: column %d out of range 0..%d", r, c, n-1)
		}
		queens = append(queens, domain.Cell{Row: r, Col: c})
		labels = append(labels, Square(r, c))
	}

	var grid [][]domain.SquareState
	if showAttacks {
		grid = Classify(n, queens)
	} else {
		grid = make([][]domain.SquareState, n)
		for r := range grid {
			grid[r] = make([]domain.SquareState, n)
		}
		for _, q := range queens {
			grid[q.Row][q.Col] = domain.SquareQueen
		}
	}
	return domain.BoardView{Size: n, Grid: grid, Queens: queens, Labels: labels}, nil
}

// Classify marks every square of an n×n board as queen, attacked, or safe,
// given the placed queens. A queen attacks its row, its column, and both
// diagonals out to the board edge.
func Classify(n int, queens []domain.Cell) [][]domain.SquareState {
	grid := make([][]domain.SquareState, n)
	for r := range grid {
		grid[r] = make([]domain.SquareState, n)
		for c := range grid[r] {
			grid[r][c] = domain.SquareSafe
		}
	}
	for _, q := range queens {
		for i := 0; i < n; i++ {
			grid[q.Row][i] = domain.SquareAttacked
			grid[i][q.Col] = domain.SquareAttacked
		}
		for d := -n; d <= n; d++ {
			if r := q.Row + d; r >= 0 && r < n {
				if c := q.Col + d; c >= 0 && c < n {
					grid[r][c] = domain.SquareAttacked
				}
				if c := q.Col - d; c >= 0 && c < n {
					grid[r][c] = domain.SquareAttacked
				}
			}
		}
	}
	// queens last, so they override their own attack lines
	for _, q := range queens {
		grid[q.Row][q.Col] = domain.SquareQueen
	}
	return grid
}

// Text returns an ASCII chessboard for the placed rows of p: a column
// header, a dashed frame, and one Q-or-dot line per placed row.
func Text(n int, p domain.Placement) string {
	var b strings.Builder
	b.WriteString("    ")
	for c := 0; c < n; c++ {
		if c > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%d", c)
	}
	b.WriteByte('\n')
	frame := "  +" + strings.Repeat("---", n) + "+"
	b.WriteString(frame)
	b.WriteByte('\n')
	for row, col := range p {
		fmt.Fprintf(&b, "%d |", row)
		for c := 0; c < n; c++ {
			if c == col {
				b.WriteString(" Q ")
			} else {
				b.WriteString(" . ")
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(frame)
	return b.String()
}
