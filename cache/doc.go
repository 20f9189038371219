// Package cache provides a keyed store for solved plans. Dense food layouts
// cost seconds of search; a solve keyed by (layout, problem, strategy,
// heuristic, goal) is fully deterministic, so its plan can be reused forever.
//
// Two backends share the Store contract: an in-process bounded memory store
// and a Redis store (go-redis) with optional key prefix and TTL. Both report
// a miss with the sentinel ErrMiss, keeping "not cached" distinct from a
// backend failure.
//
// Keys are SHA-256 over a canonical encoding of the request, so equivalent
// requests collide on purpose and different ones practically never do.
package cache
