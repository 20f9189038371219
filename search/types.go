// Package search defines the Problem contract, node and result types,
// sentinel errors, and functional options for the graph-search core.
package search

import (
	"context"
	"errors"
)

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when the frontier is exhausted without reaching
	// a goal state. It signals "no solution exists", not a fault.
	ErrNoPath = errors.New("search: no path to a goal state")

	// ErrNilProblem is returned if a nil Problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilFrontier is returned if a nil Frontier is passed to Run.
	ErrNilFrontier = errors.New("search: frontier is nil")

	// ErrIllegalAction is returned by Replay when an action has no matching
	// successor at the current state.
	ErrIllegalAction = errors.New("search: action is not legal in this state")
)

// Successor is a single legal one-step transition out of a state:
// the resulting state, the action that produces it, and its step cost.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the abstract state-space contract every strategy searches over.
//
// Implementations must be pure functions of the state and the problem's
// immutable configuration: no side effects, no hidden mutable context.
// A state value fully determines future behavior.
//
// Precondition (not checked at run time): every step cost is non-negative.
// Cost-ordered strategies lose their optimality guarantee if violated.
type Problem[S comparable, A any] interface {
	// Start returns the initial configuration.
	Start() S

	// IsGoal reports whether s satisfies the goal predicate.
	IsGoal(s S) bool

	// Successors returns all legal one-step transitions out of s,
	// in a fixed, deterministic order.
	Successors(s S) []Successor[S, A]

	// PathCost returns the total cost of a full action sequence applied from
	// the start state, independent of any search. Implementations return
	// +Inf for sequences containing an illegal action.
	PathCost(actions []A) float64
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must be non-negative; for A* optimality it must also never overestimate
// the true remaining cost (admissibility). That obligation rests with the
// caller and is verified by tests on the heuristic itself, not at run time.
type Heuristic[S comparable] func(s S) float64

// Zero is the null heuristic. A* with Zero degenerates to uniform-cost search.
func Zero[S comparable](S) float64 { return 0 }

// Node pairs a state with the action path that produced it and the cumulative
// path cost. Nodes are owned by a single Run invocation and discarded when it
// returns.
type Node[S comparable, A any] struct {
	State S
	Path  []A
	Cost  float64
}

// Frontier is the strategy-specific container of generated-but-not-yet-expanded
// nodes. Pop removes and returns the next node to expand; the ordering policy
// is the only thing distinguishing the four search strategies.
type Frontier[S comparable, A any] interface {
	Push(n *Node[S, A])
	Pop() *Node[S, A]
	Len() int
}

// Result holds the outcome of one search call:
//   - Actions: the action sequence from start to the first goal reached
//     (empty when the start state is itself a goal).
//   - Cost: cumulative step cost of Actions.
//   - Expanded: number of states whose successors were generated. Purely
//     observational; exposed for statistics and must not affect results.
type Result[A any] struct {
	Actions  []A
	Cost     float64
	Expanded int
}

// Option configures search behavior via functional arguments.
type Option[S comparable] func(*Options[S])

// Options holds parameters and callbacks to customize one search call.
// All hooks are observational: they receive state and cumulative cost and
// must not influence the search outcome.
type Options[S comparable] struct {
	// Ctx allows cancellation and deadlines. Cancellation aborts the call
	// with the context error; it never corrupts caller-visible state because
	// frontier and visited set are scoped to the call.
	Ctx context.Context

	// OnExpand is called when a state is expanded (popped, marked visited,
	// successors about to be generated).
	OnExpand func(s S, cost float64)

	// OnEnqueue is called when a generated successor enters the frontier.
	OnEnqueue func(s S, cost float64)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		OnExpand:  func(S, float64) {},
		OnEnqueue: func(S, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback to run on every expansion.
func WithOnExpand[S comparable](fn func(s S, cost float64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on every frontier insertion.
func WithOnEnqueue[S comparable](fn func(s S, cost float64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
