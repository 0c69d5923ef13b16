package solvers

import "github.com/katalvlaran/cliquemine/graph"

// PseudoOptions configures PseudoNaive. Alpha must be in (0, 1).
type PseudoOptions struct {
	Alpha float64
}

// PseudoOption mutates a PseudoOptions during construction.
type PseudoOption func(*PseudoOptions)

// WithPseudoAlpha sets the pseudo-clique density threshold γ.
func WithPseudoAlpha(alpha float64) PseudoOption {
	return func(o *PseudoOptions) { o.Alpha = alpha }
}

func defaultPseudoOptions() PseudoOptions {
	return PseudoOptions{Alpha: 0.5}
}

// PseudoNaive is the greedy-over-degeneracy solver for γ-pseudo-clique:
// the induced edge count of the candidate set must be at least
// ceil(0.5*γ*|S|*(|S|-1)).
func PseudoNaive(g *graph.CSRGraph, opts ...PseudoOption) Result {
	cfg := defaultPseudoOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	alpha := cfg.Alpha

	m := newMembership(g.Size())
	return greedyOverDegeneracy(g, func(members []graph.VertexID) bool {
		reset := m.mark(members)
		defer reset()

		size := float64(len(members))
		threshold := ceilInt(0.5 * alpha * size * (size - 1))
		return m.inducedEdgeCount(g, members) >= int64(threshold)
	})
}
