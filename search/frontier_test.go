package search_test

import (
	"testing"

	"github.com/katalvlaran/wayfind/search"
)

func node(state string, cost float64) *search.Node[string, string] {
	return &search.Node[string, string]{State: state, Cost: cost}
}

// popAll drains f and returns the states in removal order.
func popAll(f search.Frontier[string, string]) []string {
	var out []string
	for f.Len() > 0 {
		out = append(out, f.Pop().State)
	}

	return out
}

func TestStack_LIFO(t *testing.T) {
	f := search.NewStack[string, string]()
	f.Push(node("a", 0))
	f.Push(node("b", 0))
	f.Push(node("c", 0))

	got := popAll(f)
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("stack order = %v, want %v", got, want)
		}
	}
}

func TestQueue_FIFO(t *testing.T) {
	f := search.NewQueue[string, string]()
	f.Push(node("a", 0))
	f.Push(node("b", 0))
	f.Push(node("c", 0))
	// interleave removal and insertion
	if first := f.Pop().State; first != "a" {
		t.Fatalf("first pop = %q, want %q", first, "a")
	}
	f.Push(node("d", 0))

	got := popAll(f)
	want := []string{"b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("queue order = %v, want %v", got, want)
		}
	}
}

func TestCostOrdered_MinCostFirst(t *testing.T) {
	f := search.NewCostOrdered[string, string]()
	f.Push(node("expensive", 7))
	f.Push(node("cheap", 1))
	f.Push(node("mid", 3))

	got := popAll(f)
	want := []string{"cheap", "mid", "expensive"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cost order = %v, want %v", got, want)
		}
	}
}

// Equal keys must pop in insertion order: the tie-break is stable, which is
// what makes repeated searches deterministic.
func TestCostOrdered_StableTies(t *testing.T) {
	f := search.NewCostOrdered[string, string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		f.Push(node(s, 2))
	}

	got := popAll(f)
	want := []string{"a", "b", "c", "d", "e"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tie order = %v, want %v", got, want)
		}
	}
}

func TestBestFirst_AddsHeuristic(t *testing.T) {
	// h pushes "far" behind "near" despite equal path costs.
	h := func(s string) float64 {
		if s == "far" {
			return 10
		}

		return 0
	}
	f := search.NewBestFirst[string, string](h)
	f.Push(node("far", 1))
	f.Push(node("near", 1))

	if got := f.Pop().State; got != "near" {
		t.Fatalf("best-first pop = %q, want %q", got, "near")
	}
}

func TestBestFirst_NilHeuristicIsUniformCost(t *testing.T) {
	f := search.NewBestFirst[string, string](nil)
	f.Push(node("b", 5))
	f.Push(node("a", 2))

	if got := f.Pop().State; got != "a" {
		t.Fatalf("pop = %q, want %q", got, "a")
	}
}
