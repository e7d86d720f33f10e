package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Renderer  ports.Renderer
	Navigator ports.Navigator
	Hinter    ports.Hinter
	Validator ports.Validator
	Cache     ports.Cache
}

func NewService(s ports.Solver, r ports.Renderer, n ports.Navigator, h ports.Hinter, v ports.Validator, c ports.Cache) *Service {
	return &Service{Solver: s, Renderer: r, Navigator: n, Hinter: h, Validator: v, Cache: c}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve returns every solution for n, reading through the cache. A miss
// runs the solver and stores the fresh set; the returned flag reports
// whether the set came from the cache. Cache hits carry zero nodes and
// the lookup duration in Stats.
func (u *Service) Solve(ctx context.Context, n int) ([]domain.Placement, ports.Stats, bool, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, false, errNotConfigured
	}
	if u.Cache != nil {
		start := time.Now()
		if sols, ok, err := u.Cache.Get(ctx, n); err == nil && ok {
			return sols, ports.Stats{Duration: time.Since(start)}, true, nil
		}
	}
	sols, st, err := u.Solver.Solve(ctx, n)
	if err != nil {
		return nil, st, false, err
	}
	if u.Cache != nil {
		if err := u.Cache.Put(ctx, n, sols); err != nil {
			return nil, st, false, err
		}
	}
	return sols, st, false, nil
}

// Navigate moves over the solution list for n and returns the new index,
// the solution there, and the list size. An empty list yields index 0 and
// a nil placement.
func (u *Service) Navigate(ctx context.Context, n, index int, dir domain.Direction) (int, domain.Placement, int, error) {
	if u.Navigator == nil {
		return 0, nil, 0, errNotConfigured
	}
	sols, _, _, err := u.Solve(ctx, n)
	if err != nil {
		return 0, nil, 0, err
	}
	idx := u.Navigator.Navigate(len(sols), index, dir)
	if len(sols) == 0 {
		return idx, nil, 0, nil
	}
	return idx, sols[idx], len(sols), nil
}

// Board renders the solution at index with the first placed rows shown;
// placed == n is the full board.
func (u *Service) Board(ctx context.Context, n, index, placed int, showAttacks bool) (domain.BoardView, error) {
	if u.Renderer == nil {
		return domain.BoardView{}, errNotConfigured
	}
	sols, _, _, err := u.Solve(ctx, n)
	if err != nil {
		return domain.BoardView{}, err
	}
	if len(sols) == 0 {
		return u.Renderer.Board(ctx, n, nil, 0, false)
	}
	idx := clamp(index, len(sols))
	return u.Renderer.Board(ctx, n, sols[idx], placed, showAttacks)
}

// Step prepares one frame of the step-through animation: the board with
// rows 0..step placed, the narration for that step, and the safe columns
// of the next row. step < 0 shows the full board.
func (u *Service) Step(ctx context.Context, n, index, step int, showAttacks bool) (domain.BoardView, domain.StepInfo, []int, error) {
	if u.Renderer == nil || u.Hinter == nil {
		return domain.BoardView{}, domain.StepInfo{}, nil, errNotConfigured
	}
	sols, _, _, err := u.Solve(ctx, n)
	if err != nil {
		return domain.BoardView{}, domain.StepInfo{}, nil, err
	}
	if len(sols) == 0 {
		view, err := u.Renderer.Board(ctx, n, nil, 0, false)
		return view, domain.StepInfo{Step: -1, Message: "No solutions found.", Done: true}, nil, err
	}
	p := sols[clamp(index, len(sols))]

	placed := n
	if step >= 0 {
		if step > n-1 {
			step = n - 1
		}
		placed = step + 1
	}
	view, err := u.Renderer.Board(ctx, n, p, placed, showAttacks)
	if err != nil {
		return domain.BoardView{}, domain.StepInfo{}, nil, err
	}
	cols, info, err := u.Hinter.Hint(ctx, n, p[:placed])
	if err != nil {
		return domain.BoardView{}, domain.StepInfo{}, nil, err
	}
	return view, info, cols, nil
}

func (u *Service) Validate(ctx context.Context, n int, p domain.Placement) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, n, p)
}

func clamp(index, total int) int {
	if index < 0 {
		return 0
	}
	if index > total-1 {
		return total - 1
	}
	return index
}
