// Package coverage defines sentinel errors and the bit-encoded set types
// carried inside coverage states.
package coverage

import (
	"errors"
	"math/bits"
)

// Sentinel errors for coverage problem construction.
var (
	// ErrNilMaze is returned if a nil maze is passed.
	ErrNilMaze = errors.New("coverage: maze is nil")

	// ErrBlockedCorner is returned by NewCorners when an inner corner is a
	// wall; the goal would be unsatisfiable by construction.
	ErrBlockedCorner = errors.New("coverage: inner corner is walled")

	// ErrTooMuchFood is returned by NewFood when the layout holds more food
	// than FoodSet can index.
	ErrTooMuchFood = errors.New("coverage: layout exceeds the food set capacity")
)

// CornerSet is a bitmask over the four inner corners, indexed in the fixed
// order of maze.Corners(): top-left, top-right, bottom-left, bottom-right.
// The zero value is the empty set. Value comparison is set equality.
type CornerSet uint8

// AllCorners is the full corner set: the corner problem's goal.
const AllCorners CornerSet = 0b1111

// Has reports whether corner i is in the set.
func (s CornerSet) Has(i int) bool { return s&(1<<i) != 0 }

// With returns the set with corner i added. The receiver is unchanged;
// corner sets only ever grow along a path.
func (s CornerSet) With(i int) CornerSet { return s | 1<<i }

// Count returns the number of corners in the set.
func (s CornerSet) Count() int { return bits.OnesCount8(uint8(s)) }

// All reports whether every corner has been visited.
func (s CornerSet) All() bool { return s == AllCorners }

// MaxFood is the largest number of food items a FoodSet can index.
const MaxFood = 256

// FoodSet is a bitmask over up to MaxFood food items, indexed by their
// row-major scan position in the layout. The array form keeps the type
// comparable, so coverage states remain valid visited-set keys.
type FoodSet [4]uint64

// FullFoodSet returns the set containing items 0..n-1.
// n must be in [0, MaxFood]; constructors validate before calling.
func FullFoodSet(n int) FoodSet {
	var s FoodSet
	for i := 0; i < n/64; i++ {
		s[i] = ^uint64(0)
	}
	if r := n % 64; r > 0 {
		s[n/64] = 1<<r - 1
	}

	return s
}

// Has reports whether item i remains in the set.
func (s FoodSet) Has(i int) bool { return s[i/64]&(1<<(i%64)) != 0 }

// Without returns the set with item i removed. The receiver is unchanged;
// remaining-food sets only ever shrink along a path.
func (s FoodSet) Without(i int) FoodSet {
	s[i/64] &^= 1 << (i % 64)

	return s
}

// Count returns the number of items remaining.
func (s FoodSet) Count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// Empty reports whether no items remain: the food problem's goal.
func (s FoodSet) Empty() bool { return s == FoodSet{} }
