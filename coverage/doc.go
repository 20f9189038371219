// Package coverage implements the two coverage problems: visit all four
// corners of a maze, and eat all food on the board.
//
// What
//
//   - Corners: state = (position, visited-corner set). Goal: all four inner
//     corners visited. CornersHeuristic is the minimum Manhattan distance to
//     an unvisited corner — admissible and consistent.
//   - Food: state = (position, remaining-food set). Goal: no food remaining.
//     Three admissible heuristics, from cheapest to best informed:
//     FoodHeuristic (Manhattan distance to the farthest remaining food),
//     FoodMazeHeuristic (true maze distance to the farthest remaining food),
//     FoodMSTHeuristic (minimum-spanning-tree lower bound over the current
//     position and all remaining food).
//
// Why augmented states
//
//	Position alone is not Markovian for coverage goals: which corners or food
//	remain changes what "done" means. Folding the coverage record into the
//	state restores the property that a state fully determines future search
//	behavior. Both records are bit-encoded so state equality and visited-set
//	lookups stay cheap; both only grow along any action sequence — a visited
//	corner or eaten food never un-becomes so.
//
// On the farthest-food heuristic
//
//	FoodHeuristic biases the search toward the farthest remaining food, which
//	can strand isolated nearby food until a late backtrack and inflate solve
//	times on food-dense layouts. That weakness is documented and accepted:
//	the heuristic stays admissible, so paths remain optimal, only slower to
//	find. FoodMazeHeuristic and FoodMSTHeuristic are the better-informed
//	alternatives, offered as improvements without changing the contract.
//
// State-space size
//
//	The food state space is exponential in the food count (position ×
//	2^remaining). Memory scales with distinct states generated; dense layouts
//	are expensive by nature, not by accident.
package coverage
