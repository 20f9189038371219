package coverage_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/coverage"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/search"
)

// ExampleNewCorners plans a four-corner tour of the tinyCorners layout,
// whose optimal tour is exactly 28 steps.
func ExampleNewCorners() {
	m, err := maze.Load("tinyCorners")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := coverage.NewCorners(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar[coverage.CornersState, maze.Direction](p, coverage.CornersHeuristic(p))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	final, _, _ := search.Replay[coverage.CornersState, maze.Direction](p, res.Actions)
	fmt.Println("steps:", len(res.Actions), "corners visited:", final.Seen.Count())
	// Output:
	// steps: 28 corners visited: 4
}

// ExampleNewFood clears the tinySearch board with the MST heuristic.
func ExampleNewFood() {
	m, err := maze.Load("tinySearch")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := coverage.NewFood(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar[coverage.FoodState, maze.Direction](p, coverage.FoodMSTHeuristic(p))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	final, _, _ := search.Replay[coverage.FoodState, maze.Direction](p, res.Actions)
	fmt.Println("steps:", len(res.Actions), "food left:", final.Remaining.Count())
	// Output:
	// steps: 19 food left: 0
}
