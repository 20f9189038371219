package maze

import (
	"fmt"
	"strings"
)

// Layout alphabet. 'o' (capsule) and 'G' (ghost spawn) belong to entities
// outside the solver's scope; they parse as open floor.
const (
	runeWall  = '%'
	runeFood  = '.'
	runeStart = 'P'
	runeFloor = ' '
)

// Maze is an immutable grid world. The wall grid is owned exclusively by the
// Maze: Parse deep-copies nothing from the caller's rows, and no accessor
// leaks internal slices.
type Maze struct {
	width, height int
	walls         [][]bool // walls[y][x]
	start         Position
	food          []Position // row-major scan order
}

// Parse builds a Maze from ASCII rows.
//
// Alphabet: '%' wall, '.' food, 'P' start (exactly one), ' ' floor;
// 'o' and 'G' parse as floor. The border must be fully walled.
//
// Errors (sentinel, wrapped with position context where useful):
//
//	ErrEmptyGrid, ErrNonRectangular, ErrUnknownRune, ErrOpenBorder,
//	ErrNoStart, ErrDuplicateStart.
func Parse(rows []string) (*Maze, error) {
	// 1. Shape checks.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width, height := len(rows[0]), len(rows)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, y, len(row), width)
		}
	}

	// 2. Cell-by-cell scan.
	m := &Maze{width: width, height: height, walls: make([][]bool, height)}
	haveStart := false
	for y := 0; y < height; y++ {
		m.walls[y] = make([]bool, width)
		for x, r := range rows[y] {
			switch r {
			case runeWall:
				m.walls[y][x] = true
			case runeFood:
				m.food = append(m.food, Position{X: x, Y: y})
			case runeStart:
				if haveStart {
					return nil, fmt.Errorf("%w: second 'P' at (%d,%d)", ErrDuplicateStart, x, y)
				}
				haveStart = true
				m.start = Position{X: x, Y: y}
			case runeFloor, 'o', 'G':
				// open floor
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownRune, r, x, y)
			}
		}
	}
	if !haveStart {
		return nil, ErrNoStart
	}

	// 3. The border must be sealed; neighbor lookups rely on it.
	for x := 0; x < width; x++ {
		if !m.walls[0][x] || !m.walls[height-1][x] {
			return nil, fmt.Errorf("%w: column %d", ErrOpenBorder, x)
		}
	}
	for y := 0; y < height; y++ {
		if !m.walls[y][0] || !m.walls[y][width-1] {
			return nil, fmt.Errorf("%w: row %d", ErrOpenBorder, y)
		}
	}

	return m, nil
}

// ParseText is Parse over a single newline-separated string.
// Leading/trailing blank lines are dropped; interior rows are kept verbatim.
func ParseText(text string) (*Maze, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")

	return Parse(lines)
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the 'P' position.
func (m *Maze) Start() Position { return m.start }

// InBounds reports whether p lies inside the grid rectangle.
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// Wall reports whether p is a wall. Out-of-bounds positions count as walls.
func (m *Maze) Wall(p Position) bool {
	if !m.InBounds(p) {
		return true
	}

	return m.walls[p.Y][p.X]
}

// Open reports whether p is a legal position for an agent: in bounds and not
// a wall.
func (m *Maze) Open(p Position) bool { return !m.Wall(p) }

// Food returns the food positions in row-major scan order.
// The returned slice is a copy; mutating it does not affect the Maze.
func (m *Maze) Food() []Position {
	out := make([]Position, len(m.food))
	copy(out, m.food)

	return out
}

// Corners returns the four inner corner positions in the fixed order
// top-left, top-right, bottom-left, bottom-right. They are derived from the
// layout rectangle, not from any marker, and may or may not be open cells.
func (m *Maze) Corners() [4]Position {
	return [4]Position{
		{X: 1, Y: 1},
		{X: m.width - 2, Y: 1},
		{X: 1, Y: m.height - 2},
		{X: m.width - 2, Y: m.height - 2},
	}
}

// Neighbors returns the legal one-step moves out of p, in the fixed direction
// order North, South, East, West.
func (m *Maze) Neighbors(p Position) []Step {
	steps := make([]Step, 0, 4)
	for _, d := range Directions() {
		dx, dy := d.Vector()
		next := Position{X: p.X + dx, Y: p.Y + dy}
		if !m.Wall(next) {
			steps = append(steps, Step{To: next, Dir: d})
		}
	}

	return steps
}

// String renders the maze back into its ASCII layout form, ending without a
// trailing newline. Parse(strings.Split(m.String(), "\n")) round-trips.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.width + 1) * m.height)
	foodAt := make(map[Position]struct{}, len(m.food))
	for _, f := range m.food {
		foodAt[f] = struct{}{}
	}
	for y := 0; y < m.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.width; x++ {
			p := Position{X: x, Y: y}
			switch {
			case m.walls[y][x]:
				b.WriteByte(runeWall)
			case p == m.start:
				b.WriteByte(runeStart)
			default:
				if _, ok := foodAt[p]; ok {
					b.WriteByte(runeFood)
				} else {
					b.WriteByte(runeFloor)
				}
			}
		}
	}

	return b.String()
}
