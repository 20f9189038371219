package coverage

import (
	"math"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/search"
)

// FoodState augments a position with the set of food items still uneaten.
// Two states are equal iff both position and remaining set are equal.
type FoodState struct {
	Pos       maze.Position
	Remaining FoodSet
}

// Food is the full-coverage problem: starting at the maze's 'P' marker, eat
// every food item. Immutable after NewFood.
type Food struct {
	m     *maze.Maze
	items []maze.Position       // index → position, row-major scan order
	index map[maze.Position]int // position → index
	start FoodState
}

var _ search.Problem[FoodState, maze.Direction] = (*Food)(nil)

// NewFood builds the full-coverage problem for m. Food items are indexed in
// row-major scan order, which fixes the FoodSet bit layout.
//
// Errors: ErrNilMaze; ErrTooMuchFood beyond MaxFood items.
func NewFood(m *maze.Maze) (*Food, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	items := m.Food()
	if len(items) > MaxFood {
		return nil, ErrTooMuchFood
	}
	p := &Food{
		m:     m,
		items: items,
		index: make(map[maze.Position]int, len(items)),
	}
	for i, f := range items {
		p.index[f] = i
	}
	// Food sharing the start cell is eaten before the first action.
	remaining := FullFoodSet(len(items))
	if i, ok := p.index[m.Start()]; ok {
		remaining = remaining.Without(i)
	}
	p.start = FoodState{Pos: m.Start(), Remaining: remaining}

	return p, nil
}

// Items returns the indexed food positions. The slice is shared and must be
// treated as read-only; it backs the heuristics in this package.
func (p *Food) Items() []maze.Position { return p.items }

// Start returns the initial state.
func (p *Food) Start() FoodState { return p.start }

// IsGoal reports whether no food remains. A layout without food is solved by
// the empty action sequence.
func (p *Food) IsGoal(s FoodState) bool { return s.Remaining.Empty() }

// Successors returns the legal moves out of s. Arriving on a cell with
// remaining food eats it; the remaining set never grows.
func (p *Food) Successors(s FoodState) []search.Successor[FoodState, maze.Direction] {
	steps := p.m.Neighbors(s.Pos)
	out := make([]search.Successor[FoodState, maze.Direction], len(steps))
	for i, st := range steps {
		remaining := s.Remaining
		if j, ok := p.index[st.To]; ok && remaining.Has(j) {
			remaining = remaining.Without(j)
		}
		out[i] = search.Successor[FoodState, maze.Direction]{
			State:  FoodState{Pos: st.To, Remaining: remaining},
			Action: st.Dir,
			Cost:   1,
		}
	}

	return out
}

// PathCost counts unit steps of a full action sequence from the start;
// +Inf if any action walks into a wall.
func (p *Food) PathCost(actions []maze.Direction) float64 {
	pos := p.start.Pos
	for _, a := range actions {
		dx, dy := a.Vector()
		next := maze.Position{X: pos.X + dx, Y: pos.Y + dy}
		if p.m.Wall(next) {
			return math.Inf(1)
		}
		pos = next
	}

	return float64(len(actions))
}
