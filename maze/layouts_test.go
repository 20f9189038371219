package maze_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/wayfind/maze"
)

func TestList_Names(t *testing.T) {
	want := []string{
		"mediumCorners", "mediumMaze",
		"tinyCorners", "tinyMaze", "tinySearch", "trickySearch",
	}
	if diff := cmp.Diff(want, maze.List()); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_AllEmbeddedLayoutsParse(t *testing.T) {
	for _, name := range maze.List() {
		m, err := maze.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if m.Width() < 5 || m.Height() < 3 {
			t.Fatalf("Load(%q): implausible dimensions %dx%d", name, m.Width(), m.Height())
		}
	}
}

func TestLoad_Unknown(t *testing.T) {
	_, err := maze.Load("atlantis")
	if !errors.Is(err, maze.ErrUnknownLayout) {
		t.Fatalf("error = %v, want ErrUnknownLayout", err)
	}
}

func TestLoad_TinyCornersShape(t *testing.T) {
	m, err := maze.Load("tinyCorners")
	if err != nil {
		t.Fatal(err)
	}
	if m.Width() != 8 || m.Height() != 8 {
		t.Fatalf("tinyCorners = %dx%d, want 8x8", m.Width(), m.Height())
	}
	// The corners layout keeps all four inner corners open; the corner
	// problem depends on that.
	for _, c := range m.Corners() {
		if !m.Open(c) {
			t.Fatalf("corner %v is walled", c)
		}
	}
}

func TestLoad_TrickySearchFoodCount(t *testing.T) {
	m, err := maze.Load("trickySearch")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(m.Food()); got != 28 {
		t.Fatalf("trickySearch food count = %d, want 28", got)
	}
}
