package maze_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/wayfind/maze"
)

func TestGenerate_BadDimensions(t *testing.T) {
	for _, dims := range [][2]int{{4, 5}, {5, 4}, {3, 5}, {5, 3}, {0, 0}} {
		_, err := maze.Generate(dims[0], dims[1])
		if !errors.Is(err, maze.ErrBadDimensions) {
			t.Fatalf("Generate(%d,%d) error = %v, want ErrBadDimensions", dims[0], dims[1], err)
		}
	}
}

func TestGenerate_BadFoodCount(t *testing.T) {
	_, err := maze.Generate(5, 5, maze.WithFood(-1))
	if !errors.Is(err, maze.ErrBadFoodCount) {
		t.Fatalf("error = %v, want ErrBadFoodCount", err)
	}
	_, err = maze.Generate(5, 5, maze.WithFood(10_000))
	if !errors.Is(err, maze.ErrBadFoodCount) {
		t.Fatalf("error = %v, want ErrBadFoodCount", err)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(21, 15, maze.WithSeed(42), maze.WithFood(10))
	if err != nil {
		t.Fatal(err)
	}
	b, err := maze.Generate(21, 15, maze.WithSeed(42), maze.WithFood(10))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Fatal("same seed produced different mazes")
	}

	c, err := maze.Generate(21, 15, maze.WithSeed(43), maze.WithFood(10))
	if err != nil {
		t.Fatal(err)
	}
	if a.String() == c.String() {
		t.Fatal("different seeds produced identical mazes")
	}
}

func TestGenerate_ZeroSeedIsDefaultSeed(t *testing.T) {
	a, _ := maze.Generate(11, 11)
	b, _ := maze.Generate(11, 11, maze.WithSeed(0))
	if a.String() != b.String() {
		t.Fatal("seed 0 must select the fixed default seed")
	}
}

// A perfect maze is a spanning tree over the cell grid: cw×ch cells plus
// exactly cells−1 knocked walls, all mutually reachable.
func TestGenerate_PerfectMaze(t *testing.T) {
	const w, h = 21, 13
	m, err := maze.Generate(w, h, maze.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	open := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Open(maze.Position{X: x, Y: y}) {
				open++
			}
		}
	}
	cells := ((w - 1) / 2) * ((h - 1) / 2)
	if want := 2*cells - 1; open != want {
		t.Fatalf("open cells = %d, want %d (spanning tree over %d cells)", open, want, cells)
	}

	// flood fill from start must reach every open cell
	reached := map[maze.Position]bool{m.Start(): true}
	queue := []maze.Position{m.Start()}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, s := range m.Neighbors(p) {
			if !reached[s.To] {
				reached[s.To] = true
				queue = append(queue, s.To)
			}
		}
	}
	if len(reached) != open {
		t.Fatalf("flood fill reached %d of %d open cells", len(reached), open)
	}
}

func TestGenerate_FoodCount(t *testing.T) {
	m, err := maze.Generate(15, 15, maze.WithSeed(3), maze.WithFood(12))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Food()); got != 12 {
		t.Fatalf("food count = %d, want 12", got)
	}
}
