package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/ports"
)

const rule = "=================================================="

// Runner solves a series of board sizes with the provided Solver and
// collects one RunResult per size.
type Runner struct {
	Solver ports.Solver
}

func NewRunner(s ports.Solver) *Runner { return &Runner{Solver: s} }

// RunOne solves a single size and returns both the tally and the full
// solution list, so callers can print example boards.
func (r *Runner) RunOne(ctx context.Context, n int) (domain.RunResult, []domain.Placement, error) {
	sols, st, err := r.Solver.Solve(ctx, n)
	if err != nil {
		return domain.RunResult{}, nil, err
	}
	return domain.RunResult{Size: n, Solutions: len(sols), Nodes: st.Nodes, Duration: st.Duration}, sols, nil
}

// Run solves every size in order, stopping at the first error.
func (r *Runner) Run(ctx context.Context, sizes []int) ([]domain.RunResult, error) {
	out := make([]domain.RunResult, 0, len(sizes))
	for _, n := range sizes {
		res, _, err := r.RunOne(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("size %d: %w", n, err)
		}
		out = append(out, res)
	}
	return out, nil
}

// Banner formats the per-size header line between two rules.
func Banner(res domain.RunResult) string {
	return fmt.Sprintf("%s\n  N = %d  |  %d solutions found  |  %.4fs\n%s",
		rule, res.Size, res.Solutions, res.Duration.Seconds(), rule)
}

// Table formats the final comparison across all solved sizes.
func Table(results []domain.RunResult) string {
	var b strings.Builder
	b.WriteString(rule + "\n  Summary\n" + rule + "\n")
	fmt.Fprintf(&b, "  %3s  %10s  %10s\n", "N", "Solutions", "Time (s)")
	fmt.Fprintf(&b, "  %3s  %10s  %10s\n", "---", "----------", "----------")
	for _, r := range results {
		fmt.Fprintf(&b, "  %3d  %10d  %10.6f\n", r.Size, r.Solutions, r.Duration.Seconds())
	}
	return b.String()
}
