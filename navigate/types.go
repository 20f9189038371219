// Package navigate defines sentinel errors and functional options for the
// single-goal position problem.
package navigate

import (
	"errors"

	"github.com/katalvlaran/wayfind/maze"
)

// Sentinel errors for problem construction and distance queries.
var (
	// ErrNilMaze is returned if a nil maze is passed.
	ErrNilMaze = errors.New("navigate: maze is nil")

	// ErrBlockedGoal is returned when the goal position is a wall or out of
	// bounds.
	ErrBlockedGoal = errors.New("navigate: goal position is not an open cell")

	// ErrBlockedStart is returned when the (possibly overridden) start
	// position is a wall or out of bounds.
	ErrBlockedStart = errors.New("navigate: start position is not an open cell")
)

// CostFn maps a destination cell to the cost of stepping onto it.
// It must return positive values; cost-ordered search strategies lose their
// optimality guarantee otherwise (a contract precondition, not checked).
type CostFn func(p maze.Position) float64

// Option configures a Problem via functional arguments.
type Option func(*Problem)

// WithStart overrides the maze's 'P' marker as the initial position.
// Validated against the wall grid by New (ErrBlockedStart).
func WithStart(p maze.Position) Option {
	return func(pb *Problem) { pb.start = p }
}

// WithStepCost replaces the uniform unit step cost with fn.
func WithStepCost(fn CostFn) Option {
	return func(pb *Problem) {
		if fn != nil {
			pb.stepCost = fn
		}
	}
}
