// Package cache defines the Store contract, the cached Solution payload, and
// the canonical request key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/katalvlaran/wayfind/maze"
)

// Sentinel errors for cache access.
var (
	// ErrMiss is returned by Get when the key is absent. A miss is an
	// expected outcome, not a failure.
	ErrMiss = errors.New("cache: key not found")

	// ErrNilSolution is returned by Put for a nil solution.
	ErrNilSolution = errors.New("cache: solution is nil")
)

// Solution is the cached outcome of one solve: the plan, its cost, and the
// expansion count of the search that produced it.
type Solution struct {
	Actions  []maze.Direction `json:"actions"`
	Cost     float64          `json:"cost"`
	Expanded int              `json:"expanded"`
}

// Store is the cache contract. Implementations must treat the Solution as
// immutable after Put.
type Store interface {
	// Get returns the solution under key, or ErrMiss.
	Get(ctx context.Context, key string) (*Solution, error)

	// Put stores the solution under key, overwriting any previous entry.
	Put(ctx context.Context, key string, sol *Solution) error
}

// Key derives the canonical cache key for a solve request: SHA-256 over the
// layout rows and every parameter that can change the resulting plan.
// The goal may be nil for the coverage problems.
func Key(rows []string, problem, strategy, heuristic string, goal *maze.Position) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(rows, "\n")))
	h.Write([]byte{0})
	h.Write([]byte(problem))
	h.Write([]byte{0})
	h.Write([]byte(strategy))
	h.Write([]byte{0})
	h.Write([]byte(heuristic))
	h.Write([]byte{0})
	if goal != nil {
		h.Write([]byte(goal.String()))
	}

	return hex.EncodeToString(h.Sum(nil))
}
