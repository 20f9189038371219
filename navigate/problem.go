package navigate

import (
	"math"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/search"
)

// Problem is the single-goal position problem over a maze. Immutable after
// New; safe to search any number of times.
type Problem struct {
	m        *maze.Maze
	start    maze.Position
	goal     maze.Position
	stepCost CostFn
}

// compile-time contract check
var _ search.Problem[maze.Position, maze.Direction] = (*Problem)(nil)

// New builds a position problem targeting goal. The start defaults to the
// maze's 'P' marker; WithStart overrides it, WithStepCost reshapes step costs.
//
// Errors: ErrNilMaze, ErrBlockedGoal, ErrBlockedStart.
func New(m *maze.Maze, goal maze.Position, opts ...Option) (*Problem, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	p := &Problem{
		m:        m,
		start:    m.Start(),
		goal:     goal,
		stepCost: func(maze.Position) float64 { return 1 },
	}
	for _, opt := range opts {
		opt(p)
	}
	if !m.Open(p.goal) {
		return nil, ErrBlockedGoal
	}
	if !m.Open(p.start) {
		return nil, ErrBlockedStart
	}

	return p, nil
}

// Start returns the initial position.
func (p *Problem) Start() maze.Position { return p.start }

// Goal returns the target position.
func (p *Problem) Goal() maze.Position { return p.goal }

// IsGoal reports whether s is the target position.
func (p *Problem) IsGoal(s maze.Position) bool { return s == p.goal }

// Successors returns the legal moves out of s in fixed direction order.
func (p *Problem) Successors(s maze.Position) []search.Successor[maze.Position, maze.Direction] {
	steps := p.m.Neighbors(s)
	out := make([]search.Successor[maze.Position, maze.Direction], len(steps))
	for i, st := range steps {
		out[i] = search.Successor[maze.Position, maze.Direction]{
			State:  st.To,
			Action: st.Dir,
			Cost:   p.stepCost(st.To),
		}
	}

	return out
}

// PathCost totals the step costs of a full action sequence applied from the
// start; +Inf if any action walks into a wall.
func (p *Problem) PathCost(actions []maze.Direction) float64 {
	pos, total := p.start, 0.0
	for _, a := range actions {
		dx, dy := a.Vector()
		next := maze.Position{X: pos.X + dx, Y: pos.Y + dy}
		if p.m.Wall(next) {
			return math.Inf(1)
		}
		pos = next
		total += p.stepCost(next)
	}

	return total
}

// Distance returns the true maze distance (fewest steps) between two open
// cells, dogfooding breadth-first search over a throwaway position problem.
//
// Errors: ErrNilMaze / ErrBlockedStart / ErrBlockedGoal for bad endpoints,
// search.ErrNoPath when from and to are disconnected.
func Distance(m *maze.Maze, from, to maze.Position) (float64, error) {
	p, err := New(m, to, WithStart(from))
	if err != nil {
		return 0, err
	}
	res, err := search.BreadthFirst[maze.Position, maze.Direction](p)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// ManhattanDistance returns |a.X−b.X| + |a.Y−b.Y|.
func ManhattanDistance(a, b maze.Position) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}

// ManhattanHeuristic returns the Manhattan-distance-to-goal heuristic for A*
// over a position problem. Admissible and consistent: one step changes the
// Manhattan distance to a fixed goal by at most the step cost.
func ManhattanHeuristic(goal maze.Position) search.Heuristic[maze.Position] {
	return func(s maze.Position) float64 {
		return ManhattanDistance(s, goal)
	}
}
