// Package search provides a generic frontier-driven graph search over any
// state space that implements the Problem contract.
//
// What
//
//   - One algorithm, Run, parameterized by a Frontier: the frontier's removal
//     order is the whole difference between depth-first, breadth-first,
//     uniform-cost and A* search.
//   - Four frontier constructors:
//   - NewStack       → LIFO removal (depth-first)
//   - NewQueue       → FIFO removal (breadth-first)
//   - NewCostOrdered → minimum cumulative path cost (uniform-cost)
//   - NewBestFirst   → minimum cost + heuristic (A*)
//   - Convenience entry points DepthFirst, BreadthFirst, UniformCost and
//     AStar wrap Run with the matching frontier.
//   - Replay walks a returned action sequence back through the problem's
//     successor function, for validation of solutions.
//
// Why
//
//   - Decouple state representation from search strategy: a Problem describes
//     WHAT the state space looks like, the Frontier decides in WHICH order it
//     is explored.
//   - Graph search, not tree search: a visited set guarantees every state is
//     expanded at most once per call, so finite state spaces always terminate.
//
// Optimality
//
//	The goal test happens when a node is REMOVED from the frontier, never
//	when it is generated. Under a cost-ordered frontier with non-negative
//	step costs, the first removal of a goal node is therefore guaranteed to
//	carry a minimum-cost path. A* inherits the same guarantee when its
//	heuristic is admissible and consistent; supplying an inadmissible
//	heuristic silently forfeits optimality (the algorithm does not, and
//	cannot tractably, validate admissibility at run time).
//
// Determinism
//
//	Problems must yield successors in a fixed order, and all frontiers break
//	ties by insertion order. Two calls with identical inputs return identical
//	action sequences.
//
// Complexity (S = states generated, b = branching factor)
//
//   - Time:  O(S·b) for stack/queue frontiers, O(S·b·log S) for cost-ordered.
//   - Space: O(S) nodes retained in frontier plus visited set. For coverage
//     problems the state carries a coverage set, so S can be exponential in
//     the number of coverage targets.
//
// The search core is single-threaded and synchronous: one call runs to
// completion or exhaustion. Frontier and visited set are owned by a single
// call and never shared or reused.
package search
