package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/wayfind/maze"
)

var tinyRows = []string{
	"%%%%%%%",
	"%    P%",
	"% %%% %",
	"%.%   %",
	"% %%% %",
	"%     %",
	"%%%%%%%",
}

func mustParse(t *testing.T, rows []string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(rows)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	return m
}

func TestParse_Valid(t *testing.T) {
	m := mustParse(t, tinyRows)

	if m.Width() != 7 || m.Height() != 7 {
		t.Fatalf("dimensions = %dx%d, want 7x7", m.Width(), m.Height())
	}
	if got, want := m.Start(), (maze.Position{X: 5, Y: 1}); got != want {
		t.Fatalf("Start() = %v, want %v", got, want)
	}
	if diff := cmp.Diff([]maze.Position{{X: 1, Y: 3}}, m.Food()); diff != "" {
		t.Fatalf("Food() mismatch (-want +got):\n%s", diff)
	}
	wantCorners := [4]maze.Position{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 5}, {X: 5, Y: 5}}
	if m.Corners() != wantCorners {
		t.Fatalf("Corners() = %v, want %v", m.Corners(), wantCorners)
	}
}

func TestParse_BeyondSolverRunesAreFloor(t *testing.T) {
	m := mustParse(t, []string{
		"%%%%%",
		"%PoG%",
		"%%%%%",
	})
	if len(m.Food()) != 0 {
		t.Fatalf("capsule/ghost runes must not produce food, got %v", m.Food())
	}
	if !m.Open(maze.Position{X: 2, Y: 1}) || !m.Open(maze.Position{X: 3, Y: 1}) {
		t.Fatal("capsule/ghost cells must parse as open floor")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, maze.ErrEmptyGrid},
		{"emptyRow", []string{""}, maze.ErrEmptyGrid},
		{"ragged", []string{"%%%", "%%"}, maze.ErrNonRectangular},
		{"noStart", []string{"%%%", "% %", "%%%"}, maze.ErrNoStart},
		{"twoStarts", []string{"%%%%", "%PP%", "%%%%"}, maze.ErrDuplicateStart},
		{"unknownRune", []string{"%%%", "%X%", "%%%"}, maze.ErrUnknownRune},
		{"openBorder", []string{"%%%", "%P%", "% %"}, maze.ErrOpenBorder},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.Parse(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestWall_OutOfBoundsIsWall(t *testing.T) {
	m := mustParse(t, tinyRows)
	for _, p := range []maze.Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 7, Y: 0}, {X: 0, Y: 7}} {
		if !m.Wall(p) {
			t.Fatalf("Wall(%v) = false, want true", p)
		}
		if m.InBounds(p) {
			t.Fatalf("InBounds(%v) = true, want false", p)
		}
	}
}

func TestNeighbors_OrderAndLegality(t *testing.T) {
	m := mustParse(t, tinyRows)
	// (3,3) sits in the pocket: open to East and West only... check the map:
	// row 3 is "%.%   %", so (3,3),(4,3),(5,3) are open; (3,2) and (3,4) are walls.
	got := m.Neighbors(maze.Position{X: 3, Y: 3})
	want := []maze.Step{
		{To: maze.Position{X: 4, Y: 3}, Dir: maze.East},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Neighbors mismatch (-want +got):\n%s", diff)
	}

	// An open crossroads yields all four, in North,South,East,West order.
	open := mustParse(t, []string{
		"%%%%%",
		"%   %",
		"% P %",
		"%   %",
		"%%%%%",
	})
	dirs := []maze.Direction{}
	for _, s := range open.Neighbors(open.Start()) {
		dirs = append(dirs, s.Dir)
	}
	if diff := cmp.Diff(maze.Directions(), dirs); diff != "" {
		t.Fatalf("direction order mismatch (-want +got):\n%s", diff)
	}
}

func TestString_RoundTrip(t *testing.T) {
	m := mustParse(t, tinyRows)
	if got, want := m.String(), strings.Join(tinyRows, "\n"); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
	again, err := maze.ParseText(m.String())
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if again.String() != m.String() {
		t.Fatal("round-trip altered the layout")
	}
}

func TestDirection_TextRoundTrip(t *testing.T) {
	for _, d := range maze.Directions() {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", d, err)
		}
		var back maze.Direction
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != d {
			t.Fatalf("round-trip %v → %q → %v", d, text, back)
		}
	}

	var d maze.Direction
	if err := d.UnmarshalText([]byte("Up")); err == nil {
		t.Fatal("expected error for unknown direction name")
	}
}

func TestDirection_VectorOpposite(t *testing.T) {
	for _, d := range maze.Directions() {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx+ox != 0 || dy+oy != 0 {
			t.Fatalf("%v and %v are not opposite", d, d.Opposite())
		}
		if abs(dx)+abs(dy) != 1 {
			t.Fatalf("%v vector (%d,%d) is not a unit step", d, dx, dy)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
