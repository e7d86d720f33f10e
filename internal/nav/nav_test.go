package nav

import (
	"fmt"
	"testing"

	"github.com/ssrini14/N-Queen/internal/domain"
)

func TestNavigateClamping(t *testing.T) {
	c := New(1)
	cases := []struct {
		total, index int
		dir          domain.Direction
		want         int
	}{
		{92, 0, domain.First, 0},
		{92, 50, domain.First, 0},
		{92, 0, domain.Last, 91},
		{92, 5, domain.Next, 6},
		{92, 91, domain.Next, 91},
		{92, 5, domain.Prev, 4},
		{92, 0, domain.Prev, 0},
		{92, 500, domain.Next, 91}, // stale index clamped first
		{92, -3, domain.Prev, 0},
		{1, 0, domain.Next, 0},
		{1, 0, domain.Prev, 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d/idx=%d/dir=%d", tc.total, tc.index, tc.dir), func(t *testing.T) {
			if got := c.Navigate(tc.total, tc.index, tc.dir); got != tc.want {
				t.Fatalf("Navigate(%d, %d, %d) = %d, want %d", tc.total, tc.index, tc.dir, got, tc.want)
			}
		})
	}
}

func TestNavigateEmptyList(t *testing.T) {
	c := New(1)
	for _, dir := range []domain.Direction{domain.First, domain.Prev, domain.Next, domain.Last, domain.Random} {
		if got := c.Navigate(0, 3, dir); got != 0 {
			t.Fatalf("Navigate over empty list returned %d, want 0", got)
		}
	}
}

func TestNavigateRandomStaysInBounds(t *testing.T) {
	c := New(42)
	for i := 0; i < 200; i++ {
		got := c.Navigate(10, 0, domain.Random)
		if got < 0 || got > 9 {
			t.Fatalf("random jump out of bounds: %d", got)
		}
	}
}

func TestNavigateSeededReproducible(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		if x, y := a.Navigate(92, 0, domain.Random), b.Navigate(92, 0, domain.Random); x != y {
			t.Fatalf("same seed diverged at jump %d: %d vs %d", i, x, y)
		}
	}
}
