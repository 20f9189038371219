package search

import "fmt"

// Replay applies an action sequence from p's start state, one step at a time,
// matching each action against the successors of the current state.
//
// It returns the final state and the accumulated step cost, or ErrIllegalAction
// (wrapped with the offending step index) if some action has no matching
// successor. Replay is the validation counterpart of Run: a solution is sound
// iff Replay succeeds and the final state satisfies p.IsGoal.
//
// A requires equality comparison here (unlike Run) because actions must be
// matched against successor transitions.
//
// Complexity: O(len(actions) · b) where b = branching factor.
func Replay[S, A comparable](p Problem[S, A], actions []A) (S, float64, error) {
	var zero S
	if p == nil {
		return zero, 0, ErrNilProblem
	}

	state := p.Start()
	cost := 0.0
	for i, a := range actions {
		matched := false
		for _, sc := range p.Successors(state) {
			if sc.Action == a {
				state = sc.State
				cost += sc.Cost
				matched = true

				break
			}
		}
		if !matched {
			return zero, 0, fmt.Errorf("%w: step %d (%v)", ErrIllegalAction, i, a)
		}
	}

	return state, cost, nil
}
