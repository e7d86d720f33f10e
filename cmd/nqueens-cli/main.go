package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/ports"
	"github.com/ssrini14/N-Queen/internal/render"
	"github.com/ssrini14/N-Queen/internal/solver"
	"github.com/ssrini14/N-Queen/internal/summary"
)

func main() {
	minN := flag.Int("min", 5, "smallest board size to solve")
	maxN := flag.Int("max", 8, "largest board size to solve")
	solverKind := flag.String("solver", "bitmask", "solver to use: bitmask|brute")
	show := flag.Int("show", 3, "example boards to print per size")
	quiet := flag.Bool("quiet", false, "print only the final comparison table")
	flag.Parse()

	if *minN < 1 || *maxN > solver.MaxSize || *minN > *maxN {
		fmt.Fprintf(os.Stderr, "invalid size range %d..%d (supported 1..%d)\n", *minN, *maxN, solver.MaxSize)
		os.Exit(2)
	}
	if *show < 0 {
		fmt.Fprintln(os.Stderr, "-show must not be negative")
		os.Exit(2)
	}

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(*solverKind)) {
	case "brute", "bruteforce":
		s = solver.NewBruteForceSolver()
	default:
		s = solver.NewBitmaskSolver()
	}
	runner := summary.NewRunner(s)

	fmt.Println("N-Queens Solver")
	fmt.Println(strings.Repeat("=", 50))

	ctx := context.Background()
	results := make([]domain.RunResult, 0, *maxN-*minN+1)
	for n := *minN; n <= *maxN; n++ {
		res, sols, err := runner.RunOne(ctx, n)
		if err != nil {
			fmt.Fprintf(os.Stderr, "solve %d: %v\n", n, err)
			os.Exit(1)
		}
		results = append(results, res)

		if *quiet {
			continue
		}
		fmt.Println()
		fmt.Println(summary.Banner(res))
		shown := *show
		if shown > len(sols) {
			shown = len(sols)
		}
		for i := 0; i < shown; i++ {
			fmt.Printf("\n  Solution %d:\n", i+1)
			fmt.Println(render.Text(n, sols[i]))
		}
		if rest := len(sols) - shown; rest > 0 {
			fmt.Printf("\n  ... and %d more solutions\n", rest)
		}
	}

	fmt.Println()
	fmt.Print(summary.Table(results))
}
