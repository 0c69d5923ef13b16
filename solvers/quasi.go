package solvers

import (
	"math"

	"github.com/katalvlaran/cliquemine/graph"
)

// QuasiOptions configures the quasi-clique solvers. Alpha must be in
// (0, 1).
type QuasiOptions struct {
	Alpha float64
}

// QuasiOption mutates a QuasiOptions during construction.
type QuasiOption func(*QuasiOptions)

// WithAlpha sets the quasi-clique density threshold γ.
func WithAlpha(alpha float64) QuasiOption {
	return func(o *QuasiOptions) { o.Alpha = alpha }
}

func defaultQuasiOptions() QuasiOptions {
	return QuasiOptions{Alpha: 0.5}
}

// QuasiNaive is the greedy-over-degeneracy solver for γ-quasi-clique:
// every member of the candidate set must have induced degree at least
// ceil(γ*(|S|-1)).
func QuasiNaive(g *graph.CSRGraph, opts ...QuasiOption) Result {
	cfg := defaultQuasiOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	alpha := cfg.Alpha

	m := newMembership(g.Size())
	return greedyOverDegeneracy(g, func(members []graph.VertexID) bool {
		reset := m.mark(members)
		defer reset()

		threshold := ceilInt(alpha * float64(len(members)-1))
		for _, u := range members {
			if m.inducedDegree(g, u) < threshold {
				return false
			}
		}
		return true
	})
}

// QuasiCliquePeeling is the alternative naive solver for γ-quasi-clique:
// degeneracy peeling mirroring k-plex-Degen's structure. Repeatedly
// popping the globally smallest-degree remaining vertex, the remaining
// set (v included) is a valid quasi-clique exactly when v's current
// degree is at least ceil(γ*(remaining-1)).
func QuasiCliquePeeling(g *graph.CSRGraph, opts ...QuasiOption) Result {
	cfg := defaultQuasiOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	alpha := cfg.Alpha

	outcome := degeneracyPeel(
		g,
		func(d, remaining int32) bool {
			return float64(d) >= math.Ceil(alpha*float64(remaining-1))
		},
		nil,
	)
	return Result{Members: outcome.members, Size: len(outcome.members)}
}
