package coverage_test

import (
	"testing"

	"github.com/katalvlaran/wayfind/coverage"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/search"
)

// BenchmarkCorners_AStar measures the corner tour on mediumCorners.
func BenchmarkCorners_AStar(b *testing.B) {
	m, err := maze.Load("mediumCorners")
	if err != nil {
		b.Fatal(err)
	}
	p, err := coverage.NewCorners(m)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar[coverage.CornersState, maze.Direction](p, coverage.CornersHeuristic(p))
	}
}

// BenchmarkFood_Heuristics compares the three food heuristics on tinySearch.
func BenchmarkFood_Heuristics(b *testing.B) {
	m, err := maze.Load("tinySearch")
	if err != nil {
		b.Fatal(err)
	}
	p, err := coverage.NewFood(m)
	if err != nil {
		b.Fatal(err)
	}

	cases := []struct {
		name string
		h    func() search.Heuristic[coverage.FoodState]
	}{
		{"farthest-manhattan", func() search.Heuristic[coverage.FoodState] { return coverage.FoodHeuristic(p) }},
		{"farthest-maze", func() search.Heuristic[coverage.FoodState] { return coverage.FoodMazeHeuristic(p) }},
		{"mst", func() search.Heuristic[coverage.FoodState] { return coverage.FoodMSTHeuristic(p) }},
	}
	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = search.AStar[coverage.FoodState, maze.Direction](p, tc.h())
			}
		})
	}
}
