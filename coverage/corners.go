package coverage

import (
	"math"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/navigate"
	"github.com/katalvlaran/wayfind/search"
)

// CornersState augments a position with the record of corners visited so far.
// Two states are equal iff both position and record are equal.
type CornersState struct {
	Pos  maze.Position
	Seen CornerSet
}

// Corners is the corner-coverage problem: starting at the maze's 'P' marker,
// touch all four inner corners. Immutable after NewCorners.
type Corners struct {
	m       *maze.Maze
	corners [4]maze.Position
	start   CornersState
}

var _ search.Problem[CornersState, maze.Direction] = (*Corners)(nil)

// NewCorners builds the corner-coverage problem for m. The corner positions
// are derived from the layout rectangle (maze.Corners), not from markers.
//
// Errors: ErrNilMaze; ErrBlockedCorner when a corner cell is walled, since no
// action sequence could then satisfy the goal.
func NewCorners(m *maze.Maze) (*Corners, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	p := &Corners{m: m, corners: m.Corners()}
	for _, c := range p.corners {
		if !m.Open(c) {
			return nil, ErrBlockedCorner
		}
	}
	p.start = CornersState{Pos: m.Start(), Seen: p.mark(0, m.Start())}

	return p, nil
}

// mark returns seen with the corner at pos added, if pos is an unseen corner.
func (p *Corners) mark(seen CornerSet, pos maze.Position) CornerSet {
	for i, c := range p.corners {
		if pos == c {
			return seen.With(i)
		}
	}

	return seen
}

// Corners returns the four corner positions in their index order.
func (p *Corners) Corners() [4]maze.Position { return p.corners }

// Start returns the initial state. If the start cell is itself a corner, it
// counts as visited from the outset.
func (p *Corners) Start() CornersState { return p.start }

// IsGoal reports whether all four corners have been visited.
func (p *Corners) IsGoal(s CornersState) bool { return s.Seen.All() }

// Successors returns the legal moves out of s. Landing on an unseen corner
// extends the visited record; the record never shrinks.
func (p *Corners) Successors(s CornersState) []search.Successor[CornersState, maze.Direction] {
	steps := p.m.Neighbors(s.Pos)
	out := make([]search.Successor[CornersState, maze.Direction], len(steps))
	for i, st := range steps {
		out[i] = search.Successor[CornersState, maze.Direction]{
			State:  CornersState{Pos: st.To, Seen: p.mark(s.Seen, st.To)},
			Action: st.Dir,
			Cost:   1,
		}
	}

	return out
}

// PathCost counts unit steps of a full action sequence from the start;
// +Inf if any action walks into a wall.
func (p *Corners) PathCost(actions []maze.Direction) float64 {
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

// CornersHeuristic estimates remaining cost as the Manhattan distance to the
// nearest unvisited corner (0 once all are visited).
//
// Admissible: finishing the tour costs at least reaching the nearest
// remaining corner, and walls only stretch real distances beyond Manhattan.
// Consistent: one unit step changes the Manhattan distance to any fixed
// corner by at most 1, and the minimum is taken over a record that changes
// only when a corner is reached — at which point the dropped term was 0.
func CornersHeuristic(p *Corners) search.Heuristic[CornersState] {
	return func(s CornersState) float64 {
		best := math.Inf(1)
		for i, c := range p.corners {
			if s.Seen.Has(i) {
				continue
			}
			if d := navigate.ManhattanDistance(s.Pos, c); d < best {
				best = d
			}
		}
		if math.IsInf(best, 1) {
			return 0 // all corners visited
		}

		return best
	}
}
