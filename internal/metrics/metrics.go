// Package metrics exposes Prometheus collectors for the solve pipeline.
// Collection is strictly observational: counters are driven by search hooks
// and runner outcomes and never feed back into search results.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the solve-pipeline collectors.
type Metrics struct {
	// SolvesTotal counts finished solves by problem, strategy, and outcome
	// (solved | no_path | error | cached).
	SolvesTotal *prometheus.CounterVec

	// SolveDuration observes wall-clock solve time by problem and strategy.
	SolveDuration *prometheus.HistogramVec

	// NodesExpanded counts search expansions across all solves.
	NodesExpanded prometheus.Counter
}

// New builds the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wayfind",
			Name:      "solves_total",
			Help:      "Finished solve requests by problem, strategy, and outcome.",
		}, []string{"problem", "strategy", "outcome"}),
		SolveDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wayfind",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of solve requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"problem", "strategy"}),
		NodesExpanded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "wayfind",
			Name:      "nodes_expanded_total",
			Help:      "Search nodes expanded across all solves.",
		}),
	}
	reg.MustRegister(m.SolvesTotal, m.SolveDuration, m.NodesExpanded)

	return m
}

// Observe records one finished solve. Implements runner.Observer.
func (m *Metrics) Observe(problem, strategy, outcome string, d time.Duration, expanded int) {
	m.SolvesTotal.WithLabelValues(problem, strategy, outcome).Inc()
	m.SolveDuration.WithLabelValues(problem, strategy).Observe(d.Seconds())
	m.NodesExpanded.Add(float64(expanded))
}
