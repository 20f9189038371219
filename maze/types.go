// Package maze defines core types, options, and sentinel errors for the grid
// world: positions, directions, and everything the parser and generator can
// reject.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout parsing, the layout registry, and generation.
var (
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: layout must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrNoStart indicates a layout without a 'P' start marker.
	ErrNoStart = errors.New("maze: layout has no start position")

	// ErrDuplicateStart indicates a layout with more than one 'P' marker.
	ErrDuplicateStart = errors.New("maze: layout has more than one start position")

	// ErrUnknownRune indicates a rune outside the layout alphabet.
	ErrUnknownRune = errors.New("maze: unknown rune in layout")

	// ErrOpenBorder indicates a border cell that is not a wall.
	ErrOpenBorder = errors.New("maze: layout border must be fully walled")

	// ErrUnknownLayout is returned by Load for a name absent from the registry.
	ErrUnknownLayout = errors.New("maze: unknown layout name")

	// ErrUnknownDirection is returned when unmarshalling an unrecognized
	// direction name.
	ErrUnknownDirection = errors.New("maze: unknown direction")

	// ErrBadDimensions is returned by Generate for dimensions that cannot
	// hold a carved maze (both must be odd and at least 5).
	ErrBadDimensions = errors.New("maze: width and height must be odd and >= 5")

	// ErrBadFoodCount is returned by Generate when the requested food count
	// is negative or exceeds the number of available open cells.
	ErrBadFoodCount = errors.New("maze: food count out of range")
)

// Position is a 2-D integer grid coordinate. X grows eastward, Y southward.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String renders the position as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Direction is one of the four legal unit moves.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// directionNames maps each Direction to its canonical text form.
var directionNames = [...]string{
	North: "North",
	South: "South",
	East:  "East",
	West:  "West",
}

// Directions returns the four directions in the fixed order used for
// successor generation: North, South, East, West. The order is part of the
// determinism contract; callers must not rely on any other.
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// Vector returns the grid displacement of one step in direction d.
// North is (0,-1) because Y grows southward.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	default: // West
		return -1, 0
	}
}

// Opposite returns the direction that undoes one step of d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// String returns the canonical direction name.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler, so Direction values keep
// their names through JSON and YAML.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Returns ErrUnknownDirection for any name outside the four canonical ones.
func (d *Direction) UnmarshalText(text []byte) error {
	name := string(text)
	for i, n := range directionNames {
		if n == name {
			*d = Direction(i)

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Step is a legal one-step move: the resulting position and its direction.
type Step struct {
	To  Position
	Dir Direction
}
