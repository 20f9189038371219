// Package maze provides the 2-D grid world the path-finding problems run on:
// parsing of ASCII layouts, an immutable Maze value, a registry of named
// embedded layouts, and a deterministic maze generator.
//
// What
//
//   - Position and Direction value types; directions carry their grid vector
//     and a stable text form (suitable for JSON/YAML round-trips).
//   - Parse / ParseText build an immutable Maze from ASCII rows:
//     '%' wall, '.' food, 'P' start, ' ' open floor.
//   - Load retrieves one of the embedded named layouts (tinyMaze,
//     tinyCorners, trickySearch, ...); List enumerates them.
//   - Generate carves a perfect maze (a spanning tree over cells: every open
//     cell reachable by exactly one wall-free route) from a seed, optionally
//     sprinkling food; same seed, same maze, on every platform.
//
// Why
//
//   - The search problems (navigate, coverage) only consume the Maze read
//     surface: wall lookups, legal neighbor moves, food and corner positions.
//     Keeping the grid world in one package keeps the problems free of any
//     parsing or I/O concern.
//
// Geometry
//
//	X grows eastward, Y grows southward; (0,0) is the top-left rune of the
//	layout. North therefore decreases Y. The outer border of every layout
//	must be fully walled, which spares all neighbor lookups a bounds check.
//
// Determinism
//
//	Neighbors returns legal moves in the fixed order North, South, East,
//	West. Food positions are reported in row-major scan order. Generation is
//	driven by a seeded RNG only; no time-based sources anywhere.
package maze
