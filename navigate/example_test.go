package navigate_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/navigate"
	"github.com/katalvlaran/wayfind/search"
)

// ExampleNew plans the fewest-step route to the single food cell of the
// tinyMaze layout.
func ExampleNew() {
	m, err := maze.Load("tinyMaze")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p, err := navigate.New(m, m.Food()[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BreadthFirst[maze.Position, maze.Direction](p)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Actions)
	fmt.Println("cost:", res.Cost)
	// Output:
	// [West West West West South South]
	// cost: 6
}

// ExampleDistance measures the true maze distance between two cells,
// which walls stretch well beyond the Manhattan distance.
func ExampleDistance() {
	m, err := maze.Load("tinyMaze")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d, err := navigate.Distance(m, m.Start(), m.Food()[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("maze:", d, "manhattan:", navigate.ManhattanDistance(m.Start(), m.Food()[0]))
	// Output:
	// maze: 6 manhattan: 6
}
