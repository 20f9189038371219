package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/wayfind/cache"
	"github.com/katalvlaran/wayfind/coverage"
	"github.com/katalvlaran/wayfind/maze"
	"github.com/katalvlaran/wayfind/navigate"
	"github.com/katalvlaran/wayfind/search"
)

// Runner executes solve requests. Safe for concurrent use: every solve owns
// its problem, frontier, and visited set; only the cache and observer are
// shared, and both are concurrency-safe by contract.
type Runner struct {
	store cache.Store
	log   *slog.Logger
	obs   Observer
}

// New builds a Runner. Without options it solves with no cache, the default
// slog logger, and no observer.
func New(opts ...Option) *Runner {
	r := &Runner{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes one solve request.
//
// Flow: validate → resolve layout → consult the cache → build the variant's
// problem → run the strategy → validate the plan by replay → cache → report.
//
// Errors: the request-validation sentinels (see IsBadRequest),
// search.ErrNoPath when no solution exists, ErrInvalidPlan on a replay
// failure, or the context error on cancellation.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	began := time.Now()

	if err := validate(req); err != nil {
		return nil, err
	}

	m, err := resolveLayout(req)
	if err != nil {
		return nil, err
	}

	// Canonical rows via the maze's own rendering, so that a named layout
	// and its verbatim inline copy share a cache key.
	rows := strings.Split(m.String(), "\n")
	key := cache.Key(rows, string(req.Problem), string(req.Strategy), string(req.Heuristic), req.Goal)

	if r.store != nil {
		if sol, cErr := r.store.Get(ctx, key); cErr == nil {
			d := time.Since(began)
			r.observe(req, "cached", d, 0)
			r.log.Debug("solve served from cache", "problem", req.Problem, "strategy", req.Strategy)

			return &Report{
				Actions:  sol.Actions,
				Cost:     sol.Cost,
				Expanded: sol.Expanded,
				Duration: d,
				Cached:   true,
				Start:    m.Start(),
				Goal:     req.Goal,
			}, nil
		} else if !errors.Is(cErr, cache.ErrMiss) {
			// degraded but functional: fall through to a fresh solve
			r.log.Warn("cache get failed", "err", cErr)
		}
	}

	res, err := r.dispatch(ctx, m, req)
	d := time.Since(began)
	switch {
	case errors.Is(err, search.ErrNoPath):
		expanded := 0
		if res != nil {
			expanded = res.Expanded
		}
		r.observe(req, "no_path", d, expanded)
		r.log.Info("no path exists", "problem", req.Problem, "strategy", req.Strategy, "expanded", expanded)

		return nil, err
	case err != nil:
		r.observe(req, "error", d, 0)

		return nil, err
	}

	if r.store != nil {
		sol := &cache.Solution{Actions: res.Actions, Cost: res.Cost, Expanded: res.Expanded}
		if pErr := r.store.Put(ctx, key, sol); pErr != nil {
			r.log.Warn("cache put failed", "err", pErr)
		}
	}

	r.observe(req, "solved", d, res.Expanded)
	r.log.Info("solved",
		"problem", req.Problem, "strategy", req.Strategy,
		"cost", res.Cost, "expanded", res.Expanded, "duration", d)

	return &Report{
		Actions:  res.Actions,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Duration: d,
		Start:    m.Start(),
		Goal:     req.Goal,
	}, nil
}

func (r *Runner) observe(req Request, outcome string, d time.Duration, expanded int) {
	if r.obs != nil {
		r.obs.Observe(string(req.Problem), string(req.Strategy), outcome, d, expanded)
	}
}

// validate enforces the request surface before any work happens.
func validate(req Request) error {
	switch {
	case req.Layout == "" && len(req.Rows) == 0:
		return ErrNoLayout
	case req.Layout != "" && len(req.Rows) > 0:
		return ErrLayoutConflict
	}

	switch req.Problem {
	case ProblemPosition:
		if req.Goal == nil {
			return ErrGoalRequired
		}
	case ProblemCorners, ProblemFood:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownProblem, req.Problem)
	}

	switch req.Strategy {
	case StrategyDFS, StrategyBFS, StrategyUCS, StrategyAStar:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, req.Strategy)
	}

	switch req.Heuristic {
	case HeuristicDefault, HeuristicManhattan, HeuristicMaze, HeuristicMST:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownHeuristic, req.Heuristic)
	}
	if req.Heuristic != HeuristicDefault && req.Strategy != StrategyAStar {
		return fmt.Errorf("%w: %q needs strategy %q", ErrHeuristicMismatch, req.Heuristic, StrategyAStar)
	}
	if (req.Heuristic == HeuristicMaze || req.Heuristic == HeuristicMST) && req.Problem != ProblemFood {
		return fmt.Errorf("%w: %q applies to the food problem only", ErrHeuristicMismatch, req.Heuristic)
	}

	return nil
}

func resolveLayout(req Request) (*maze.Maze, error) {
	if req.Layout != "" {
		return maze.Load(req.Layout)
	}

	return maze.Parse(req.Rows)
}

// dispatch builds the variant's problem and heuristic, then solves.
// This is the tagged-union seam: each variant binds its own state type.
func (r *Runner) dispatch(ctx context.Context, m *maze.Maze, req Request) (*search.Result[maze.Direction], error) {
	switch req.Problem {
	case ProblemPosition:
		p, err := navigate.New(m, *req.Goal)
		if err != nil {
			return nil, err
		}
		var h search.Heuristic[maze.Position]
		if req.Strategy == StrategyAStar {
			h = navigate.ManhattanHeuristic(p.Goal())
		}

		return solve[maze.Position](ctx, p, req.Strategy, h)

	case ProblemCorners:
		p, err := coverage.NewCorners(m)
		if err != nil {
			return nil, err
		}
		var h search.Heuristic[coverage.CornersState]
		if req.Strategy == StrategyAStar {
			h = coverage.CornersHeuristic(p)
		}

		return solve[coverage.CornersState](ctx, p, req.Strategy, h)

	default: // ProblemFood, by validate
		p, err := coverage.NewFood(m)
		if err != nil {
			return nil, err
		}
		var h search.Heuristic[coverage.FoodState]
		if req.Strategy == StrategyAStar {
			switch req.Heuristic {
			case HeuristicMaze:
				h = coverage.FoodMazeHeuristic(p)
			case HeuristicMST:
				h = coverage.FoodMSTHeuristic(p)
			default:
				h = coverage.FoodHeuristic(p)
			}
		}

		return solve[coverage.FoodState](ctx, p, req.Strategy, h)
	}
}

// solve runs one strategy over one problem and replays the plan before
// handing it back. The replay guards the cache: an invalid plan must never
// be stored or served.
func solve[S comparable](ctx context.Context, p search.Problem[S, maze.Direction], st Strategy, h search.Heuristic[S]) (*search.Result[maze.Direction], error) {
	var (
		res *search.Result[maze.Direction]
		err error
	)
	withCtx := search.WithContext[S](ctx)
	switch st {
	case StrategyDFS:
		res, err = search.DepthFirst[S, maze.Direction](p, withCtx)
	case StrategyBFS:
		res, err = search.BreadthFirst[S, maze.Direction](p, withCtx)
	case StrategyUCS:
		res, err = search.UniformCost[S, maze.Direction](p, withCtx)
	default: // StrategyAStar, by validate
		res, err = search.AStar[S, maze.Direction](p, h, withCtx)
	}
	if err != nil {
		return res, err
	}

	final, cost, rErr := search.Replay[S, maze.Direction](p, res.Actions)
	if rErr != nil || !p.IsGoal(final) || cost != res.Cost {
		return nil, fmt.Errorf("%w: replay error %v", ErrInvalidPlan, rErr)
	}

	return res, nil
}
