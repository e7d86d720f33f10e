package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/ssrini14/N-Queen/internal/domain"
	"github.com/ssrini14/N-Queen/internal/hint"
	"github.com/ssrini14/N-Queen/internal/infrastructure/cache"
	"github.com/ssrini14/N-Queen/internal/nav"
	"github.com/ssrini14/N-Queen/internal/render"
	"github.com/ssrini14/N-Queen/internal/solver"
	"github.com/ssrini14/N-Queen/internal/validator"
)

func newService() *Service {
	return NewService(
		solver.NewBitmaskSolver(),
		render.New(),
		nav.New(1),
		hint.NewSteps(),
		validator.New(),
		cache.NewMemory(),
	)
}

func TestSolveReadsThroughCache(t *testing.T) {
	ctx := context.Background()
	u := newService()

	first, st, cached, err := u.Solve(ctx, 6)
	if err != nil {
		t.Fatalf("Solve(6) failed: %v", err)
	}
	if cached {
		t.Fatal("first call reported a cache hit")
	}
	if st.Nodes == 0 {
		t.Fatal("fresh solve reported zero nodes")
	}

	again, st, cached, err := u.Solve(ctx, 6)
	if err != nil {
		t.Fatalf("second Solve(6) failed: %v", err)
	}
	if !cached {
		t.Fatal("second call missed the cache")
	}
	if st.Nodes != 0 {
		t.Fatalf("cache hit reported %d nodes", st.Nodes)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatal("cached solutions differ from computed ones")
	}
}

func TestNavigateOverSolutions(t *testing.T) {
	ctx := context.Background()
	u := newService()

	idx, p, total, err := u.Navigate(ctx, 4, 0, domain.Last)
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if idx != 1 || total != 2 {
		t.Fatalf("idx=%d total=%d, want 1 and 2", idx, total)
	}
	if !reflect.DeepEqual(p, domain.Placement{2, 0, 3, 1}) {
		t.Fatalf("last solution = %v", p)
	}

	// n=3 has no solutions; navigation stays at 0 with a nil placement
	idx, p, total, err = u.Navigate(ctx, 3, 5, domain.Next)
	if err != nil {
		t.Fatalf("Navigate over empty list failed: %v", err)
	}
	if idx != 0 || p != nil || total != 0 {
		t.Fatalf("empty-list navigation: idx=%d p=%v total=%d", idx, p, total)
	}
}

func TestStepFrames(t *testing.T) {
	ctx := context.Background()
	u := newService()

	// step 0 of the first n=4 solution: one queen placed, row 1 hinted
	view, info, cols, err := u.Step(ctx, 4, 0, 0, true)
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if len(view.Queens) != 1 || view.Queens[0] != (domain.Cell{Row: 0, Col: 1}) {
		t.Fatalf("step 0 queens = %v", view.Queens)
	}
	if info.Step != 0 || info.Done {
		t.Fatalf("step info = %+v", info)
	}
	if !reflect.DeepEqual(cols, []int{3}) {
		t.Fatalf("safe columns = %v, want [3]", cols)
	}

	// step -1 shows the full board
	view, info, _, err = u.Step(ctx, 4, 0, -1, false)
	if err != nil {
		t.Fatalf("Step(-1) failed: %v", err)
	}
	if len(view.Queens) != 4 || !info.Done {
		t.Fatalf("full-board frame: queens=%d info=%+v", len(view.Queens), info)
	}

	// no solutions for n=2
	_, info, cols, err = u.Step(ctx, 2, 0, 0, false)
	if err != nil {
		t.Fatalf("Step on empty set failed: %v", err)
	}
	if cols != nil || info.Message != "No solutions found." {
		t.Fatalf("empty-set frame: cols=%v info=%+v", cols, info)
	}
}

func TestServiceNilGuards(t *testing.T) {
	u := &Service{}
	if _, _, _, err := u.Solve(context.Background(), 4); err == nil {
		t.Fatal("unconfigured service solved")
	}
	if _, _, _, err := u.Navigate(context.Background(), 4, 0, domain.Next); err == nil {
		t.Fatal("unconfigured service navigated")
	}
	if _, _, err := u.Validate(context.Background(), 4, nil); err == nil {
		t.Fatal("unconfigured service validated")
	}
}
