// Package navigate implements the single-goal position problem: reach one
// target cell of a maze from the start cell.
//
// What
//
//   - Problem adapts a maze.Maze plus a goal position to the search.Problem
//     contract, with maze.Position as the state and maze.Direction as the
//     action. Step costs default to 1 and can be reshaped per cell with
//     WithStepCost (e.g. to penalize or favor regions of the board).
//   - Distance computes the true shortest-path length between two open cells
//     by running breadth-first search over a throwaway position problem.
//   - ManhattanHeuristic is the standard admissible estimate for A* on grids:
//     walls only lengthen real paths, never shorten them below the
//     Manhattan distance.
//
// The position state needs no augmentation: the cell alone fully determines
// future behavior, so plain coordinates keep the visited set small.
package navigate
