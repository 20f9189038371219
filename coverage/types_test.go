package coverage_test

import (
	"testing"

	"github.com/katalvlaran/wayfind/coverage"
)

func TestCornerSet(t *testing.T) {
	var s coverage.CornerSet
	if s.Count() != 0 || s.All() {
		t.Fatal("zero value must be the empty set")
	}

	s = s.With(2)
	if !s.Has(2) || s.Has(0) || s.Count() != 1 {
		t.Fatalf("unexpected set after With(2): %b", s)
	}

	// With is idempotent
	if s.With(2) != s {
		t.Fatal("With must be idempotent")
	}

	for i := 0; i < 4; i++ {
		s = s.With(i)
	}
	if !s.All() || s != coverage.AllCorners {
		t.Fatalf("full set = %b, want %b", s, coverage.AllCorners)
	}
}

func TestFoodSet_FullAndEmpty(t *testing.T) {
	if !coverage.FullFoodSet(0).Empty() {
		t.Fatal("FullFoodSet(0) must be empty")
	}

	for _, n := range []int{1, 63, 64, 65, 130, coverage.MaxFood} {
		s := coverage.FullFoodSet(n)
		if s.Count() != n {
			t.Fatalf("FullFoodSet(%d).Count() = %d", n, s.Count())
		}
		if n < coverage.MaxFood && s.Has(n) {
			t.Fatalf("FullFoodSet(%d) must not contain item %d", n, n)
		}
	}
}

// Items beyond the first word must land in the right bits.
func TestFoodSet_CrossWordIndices(t *testing.T) {
	s := coverage.FullFoodSet(130)
	for _, i := range []int{0, 63, 64, 100, 129} {
		if !s.Has(i) {
			t.Fatalf("item %d missing", i)
		}
	}

	s = s.Without(100)
	if s.Has(100) || s.Count() != 129 {
		t.Fatalf("Without(100) left %d items, Has(100)=%v", s.Count(), s.Has(100))
	}
	// Without does not disturb neighbors
	if !s.Has(99) || !s.Has(101) {
		t.Fatal("Without must only clear its own bit")
	}
}

func TestFoodSet_WithoutIsNonMutating(t *testing.T) {
	s := coverage.FullFoodSet(8)
	_ = s.Without(3)
	if !s.Has(3) {
		t.Fatal("Without must not mutate the receiver")
	}
}
