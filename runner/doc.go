// Package runner orchestrates one solve end to end: resolve the layout,
// build the requested problem variant, run the requested strategy, validate
// the plan by replay, and report the outcome.
//
// Dispatch over problem variants is a tagged union — the Variant, Strategy
// and HeuristicKind enums — never runtime type inspection: each variant maps
// to a concrete Problem implementation at compile time.
//
// A Runner can optionally carry a solution cache (solves are deterministic,
// so a cached plan never goes stale) and an Observer for metrics. Every
// successful plan is replayed through the problem's successor function before
// it is returned or cached; a plan that fails replay is a solver bug and
// surfaces as ErrInvalidPlan rather than a wrong answer.
package runner
