// Package runner defines the solve request/report surface, the dispatch
// enums, sentinel errors, and Runner options.
package runner

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/wayfind/cache"
	"github.com/katalvlaran/wayfind/coverage"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/navigate"
)

// Sentinel errors for request validation and plan integrity.
var (
	// ErrNoLayout is returned when a request names no layout and carries no rows.
	ErrNoLayout = errors.New("runner: request needs a layout name or inline rows")

	// ErrLayoutConflict is returned when a request carries both a layout name
	// and inline rows.
	ErrLayoutConflict = errors.New("runner: layout name and inline rows are mutually exclusive")

	// ErrUnknownProblem is returned for a problem variant outside the enum.
	ErrUnknownProblem = errors.New("runner: unknown problem variant")

	// ErrUnknownStrategy is returned for a strategy outside the enum.
	ErrUnknownStrategy = errors.New("runner: unknown strategy")

	// ErrUnknownHeuristic is returned for a heuristic kind outside the enum.
	ErrUnknownHeuristic = errors.New("runner: unknown heuristic")

	// ErrHeuristicMismatch is returned when a heuristic is combined with a
	// strategy or problem variant that cannot use it.
	ErrHeuristicMismatch = errors.New("runner: heuristic does not apply to this strategy/problem")

	// ErrGoalRequired is returned when the position variant is requested
	// without a goal.
	ErrGoalRequired = errors.New("runner: position problem requires a goal")

	// ErrInvalidPlan is returned when a solver's plan fails replay
	// validation. It indicates a solver bug, never a bad request.
	ErrInvalidPlan = errors.New("runner: solver produced an invalid plan")
)

// Variant selects the problem built from the layout.
type Variant string

const (
	ProblemPosition Variant = "position"
	ProblemCorners  Variant = "corners"
	ProblemFood     Variant = "food"
)

// Strategy selects the frontier ordering.
type Strategy string

const (
	StrategyDFS   Strategy = "dfs"
	StrategyBFS   Strategy = "bfs"
	StrategyUCS   Strategy = "ucs"
	StrategyAStar Strategy = "astar"
)

// HeuristicKind selects the A* heuristic. Empty means the variant's default
// (Manhattan-based). Maze and MST apply to the food variant only.
type HeuristicKind string

const (
	HeuristicDefault   HeuristicKind = ""
	HeuristicManhattan HeuristicKind = "manhattan"
	HeuristicMaze      HeuristicKind = "maze"
	HeuristicMST       HeuristicKind = "mst"
)

// Request describes one solve. Exactly one of Layout (a named embedded
// layout) or Rows (an inline ASCII layout) must be set. Goal is required for
// the position variant and ignored by the coverage variants.
type Request struct {
	Layout    string         `json:"layout,omitempty" yaml:"layout,omitempty"`
	Rows      []string       `json:"rows,omitempty" yaml:"rows,omitempty"`
	Problem   Variant        `json:"problem" yaml:"problem"`
	Strategy  Strategy       `json:"strategy" yaml:"strategy"`
	Heuristic HeuristicKind  `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
	Goal      *maze.Position `json:"goal,omitempty" yaml:"goal,omitempty"`
}

// Report is the outcome of one successful solve.
type Report struct {
	Actions  []maze.Direction `json:"actions"`
	Cost     float64          `json:"cost"`
	Expanded int              `json:"expanded"`
	Duration time.Duration    `json:"duration_ns"`
	Cached   bool             `json:"cached"`
	Start    maze.Position    `json:"start"`
	Goal     *maze.Position   `json:"goal,omitempty"`
}

// Observer receives one notification per finished solve. Implementations
// must be observational only. Outcomes: solved, cached, no_path, error.
type Observer interface {
	Observe(problem, strategy, outcome string, d time.Duration, expanded int)
}

// Option configures a Runner.
type Option func(*Runner)

// WithStore attaches a solution cache.
func WithStore(s cache.Store) Option {
	return func(r *Runner) { r.store = s }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.obs = o }
}

// IsBadRequest reports whether err stems from the request itself (as opposed
// to a search failure or an internal fault); HTTP handlers map these to 400.
func IsBadRequest(err error) bool {
	for _, sentinel := range []error{
		ErrNoLayout, ErrLayoutConflict, ErrUnknownProblem, ErrUnknownStrategy,
		ErrUnknownHeuristic, ErrHeuristicMismatch, ErrGoalRequired,
		maze.ErrUnknownLayout, maze.ErrEmptyGrid, maze.ErrNonRectangular,
		maze.ErrNoStart, maze.ErrDuplicateStart, maze.ErrUnknownRune,
		maze.ErrOpenBorder,
		navigate.ErrBlockedGoal, navigate.ErrBlockedStart,
		coverage.ErrBlockedCorner, coverage.ErrTooMuchFood,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
