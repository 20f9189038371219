package coverage

import (
	"math"

	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/navigate"
	"github.com/katalvlaran/wayfind/search"
)

// FoodHeuristic estimates remaining cost as the Manhattan distance to the
// FARTHEST remaining food item (0 once the board is clear).
//
// Admissible: eating everything costs at least reaching any single remaining
// item, the farthest included. It is also deliberately greedy: steering by
// the farthest item can strand nearby food until a late backtrack, which
// inflates expansions on food-dense layouts. Known and accepted; see the
// package comment. FoodMazeHeuristic and FoodMSTHeuristic dominate it.
func FoodHeuristic(p *Food) search.Heuristic[FoodState] {
	return func(s FoodState) float64 {
		worst := 0.0
		for i, f := range p.items {
			if !s.Remaining.Has(i) {
				continue
			}
			if d := navigate.ManhattanDistance(s.Pos, f); d > worst {
				worst = d
			}
		}

		return worst
	}
}

// FoodMazeHeuristic is FoodHeuristic with true maze distances instead of
// Manhattan ones: the distance to the farthest remaining food item, walls
// accounted for. Still admissible (a real path must still reach that item),
// strictly better informed, and costlier per evaluation.
//
// Distances are computed by breadth-first search on demand and memoized per
// (cell, item) pair for the lifetime of the heuristic. A pair with no
// connecting path contributes +Inf, which correctly dooms states that can no
// longer reach all food.
//
// The returned heuristic is not safe for concurrent use; each search call
// should receive its own instance.
func FoodMazeHeuristic(p *Food) search.Heuristic[FoodState] {
	type pair struct {
		from maze.Position
		item int
	}
	memo := make(map[pair]float64)

	dist := func(from maze.Position, item int) float64 {
		k := pair{from, item}
		if d, ok := memo[k]; ok {
			return d
		}
		d, err := navigate.Distance(p.m, from, p.items[item])
		if err != nil {
			d = math.Inf(1)
		}
		memo[k] = d

		return d
	}

	return func(s FoodState) float64 {
		worst := 0.0
		for i := range p.items {
			if !s.Remaining.Has(i) {
				continue
			}
			if d := dist(s.Pos, i); d > worst {
				worst = d
			}
		}

		return worst
	}
}

// FoodMSTHeuristic estimates remaining cost as the total weight of a minimum
// spanning tree over {current position} ∪ {remaining food}, with Manhattan
// edge weights (Prim, O(n²) per evaluation).
//
// Admissible: any walk that starts at the position and touches every
// remaining item traces a connected subgraph spanning those points, and under
// a metric its length is at least the MST weight. This is the best informed
// of the three food heuristics and the right choice for dense layouts.
func FoodMSTHeuristic(p *Food) search.Heuristic[FoodState] {
	return func(s FoodState) float64 {
		// collect the points: position first, then remaining items
		pts := make([]maze.Position, 0, s.Remaining.Count()+1)
		pts = append(pts, s.Pos)
		for i, f := range p.items {
			if s.Remaining.Has(i) {
				pts = append(pts, f)
			}
		}

		return mstWeight(pts)
	}
}

// mstWeight runs Prim over the complete Manhattan-metric graph on pts and
// returns the total tree weight. O(n²) time, O(n) space.
func mstWeight(pts []maze.Position) float64 {
	n := len(pts)
	if n < 2 {
		return 0
	}

	inTree := make([]bool, n)
	bestCost := make([]float64, n)
	for v := range bestCost {
		bestCost[v] = math.Inf(1)
	}
	bestCost[0] = 0

	total := 0.0
	for it := 0; it < n; it++ {
		// pick the cheapest vertex not yet in the tree
		u, minW := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if !inTree[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		inTree[u] = true
		total += minW
		// relax the remaining vertices through u
		for v := 0; v < n; v++ {
			if !inTree[v] {
				if w := navigate.ManhattanDistance(pts[u], pts[v]); w < bestCost[v] {
					bestCost[v] = w
				}
			}
		}
	}

	return total
}
