// Graph search: one loop, four strategies. The frontier's removal order is
// the only moving part; everything else is shared.
package search

// Run explores p's state space in the order dictated by f and returns the
// first goal-reaching action sequence it removes from the frontier.
//
// Discipline:
//  1. The goal test runs at removal time, not at generation time. Under a
//     cost-ordered frontier this is what makes the first-removed goal node
//     optimal: a later-generated path to the same state may be cheaper.
//  2. The visited set records expanded states only. A state already expanded
//     is skipped when popped again (stale frontier duplicates) and its
//     successors are never re-generated.
//
// Returns:
//   - (*Result, nil) on success; Result.Actions is empty when the start state
//     already satisfies the goal.
//   - (*Result, ErrNoPath) when the frontier is exhausted; the Result still
//     carries the Expanded counter for the statistics layer.
//   - (nil, err) for nil inputs or context cancellation.
//
// Complexity: time O(S·b·C) and space O(S), where S = states generated,
// b = branching factor, C = frontier push/pop cost (O(1) for stack/queue,
// O(log S) for the priority frontiers).
func Run[S comparable, A any](p Problem[S, A], f Frontier[S, A], opts ...Option[S]) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilFrontier
	}
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}

	// Seed the frontier with the start node: empty path, zero cost.
	f.Push(&Node[S, A]{State: p.Start()})

	// visited holds expanded states only; generated-but-unexpanded states may
	// sit in the frontier many times over.
	visited := make(map[S]struct{})
	expanded := 0

	for f.Len() > 0 {
		// cancellation check (once per removal)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		n := f.Pop()
		if _, seen := visited[n.State]; seen {
			continue // stale duplicate, already expanded via a better-or-equal path
		}
		visited[n.State] = struct{}{}

		if p.IsGoal(n.State) {
			return &Result[A]{Actions: n.Path, Cost: n.Cost, Expanded: expanded}, nil
		}

		expanded++
		o.OnExpand(n.State, n.Cost)

		for _, sc := range p.Successors(n.State) {
			if _, seen := visited[sc.State]; seen {
				continue
			}
			path := make([]A, len(n.Path)+1)
			copy(path, n.Path)
			path[len(n.Path)] = sc.Action
			f.Push(&Node[S, A]{State: sc.State, Path: path, Cost: n.Cost + sc.Cost})
			o.OnEnqueue(sc.State, n.Cost+sc.Cost)
		}
	}

	return &Result[A]{Expanded: expanded}, ErrNoPath
}

// DepthFirst runs graph search with a LIFO frontier.
// The returned path reaches a goal but carries no optimality guarantee.
func DepthFirst[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[A], error) {
	return Run(p, NewStack[S, A](), opts...)
}

// BreadthFirst runs graph search with a FIFO frontier.
// With uniform step costs the returned path is cost-minimal.
func BreadthFirst[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[A], error) {
	return Run(p, NewQueue[S, A](), opts...)
}

// UniformCost runs graph search with a cost-ordered frontier.
// With non-negative step costs the returned path is cost-minimal.
func UniformCost[S comparable, A any](p Problem[S, A], opts ...Option[S]) (*Result[A], error) {
	return Run(p, NewCostOrdered[S, A](), opts...)
}

// AStar runs graph search with a cost-plus-heuristic frontier.
// With an admissible, consistent heuristic the returned path is cost-minimal
// and typically found with far fewer expansions than UniformCost.
// A nil heuristic degrades to UniformCost.
func AStar[S comparable, A any](p Problem[S, A], h Heuristic[S], opts ...Option[S]) (*Result[A], error) {
	return Run(p, NewBestFirst[S, A](h), opts...)
}
