package validator

import (
	"context"
	"reflect"
	"testing"

	"github.com/ssrini14/N-Queen/internal/domain"
)

func TestValidateAcceptsSolution(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), 4, domain.Placement{1, 3, 0, 2})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("valid solution rejected: conflicts=%v", conf)
	}
}

func TestValidateFlagsConflicts(t *testing.T) {
	cases := []struct {
		name string
		n    int
		p    domain.Placement
		want []domain.Cell
	}{
		{"shared column", 4, domain.Placement{1, 3, 1}, []domain.Cell{{Row: 2, Col: 1}}},
		{"left diagonal", 4, domain.Placement{0, 2, 3}, []domain.Cell{{Row: 2, Col: 3}}},
		{"right diagonal", 4, domain.Placement{3, 2}, []domain.Cell{{Row: 1, Col: 2}}},
		{"adjacent columns", 5, domain.Placement{0, 1}, []domain.Cell{{Row: 1, Col: 1}}},
	}
	v := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf, err := v.Validate(context.Background(), tc.n, tc.p)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok {
				t.Fatalf("placement %v passed, want conflicts %v", tc.p, tc.want)
			}
			if !reflect.DeepEqual(conf, tc.want) {
				t.Fatalf("conflicts = %v, want %v", conf, tc.want)
			}
		})
	}
}

func TestValidatePartialPrefixIsFine(t *testing.T) {
	v := New()
	ok, conf, err := v.Validate(context.Background(), 8, domain.Placement{0, 4, 7})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Fatalf("conflict-free prefix rejected: %v", conf)
	}
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	v := New()
	if _, _, err := v.Validate(context.Background(), 0, nil); err == nil {
		t.Fatal("size 0 accepted")
	}
	if _, _, err := v.Validate(context.Background(), 33, nil); err == nil {
		t.Fatal("size beyond mask width accepted")
	}
	if _, _, err := v.Validate(context.Background(), 4, domain.Placement{0, 1, 2, 3, 0}); err == nil {
		t.Fatal("overlong placement accepted")
	}
	if _, _, err := v.Validate(context.Background(), 4, domain.Placement{4}); err == nil {
		t.Fatal("out-of-range column accepted")
	}
	if _, _, err := v.Validate(context.Background(), 4, domain.Placement{-1}); err == nil {
		t.Fatal("negative column accepted")
	}
}
