package solvers

import "github.com/katalvlaran/cliquemine/graph"

// KDefOptions configures KDefNaive.
type KDefOptions struct {
	K int32
}

// KDefOption mutates a KDefOptions during construction.
type KDefOption func(*KDefOptions)

// WithKDef sets the k-defective-clique slack: the induced subgraph may be
// missing at most k edges from a clique.
func WithKDef(k int32) KDefOption {
	return func(o *KDefOptions) { o.K = k }
}

func defaultKDefOptions() KDefOptions {
	return KDefOptions{K: 1}
}

// KDefNaive is the one-shot greedy-over-degeneracy solver for
// k-defective clique: it adds vertices in reverse degeneracy order and
// stops permanently at the first infeasible addition. This mirrors the
// source's own behaviour rather than the stronger peeling variant k-plex
// uses — kept deliberately, see the module's design notes on this
// asymmetry.
func KDefNaive(g *graph.CSRGraph, opts ...KDefOption) Result {
	cfg := defaultKDefOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := int64(cfg.K)

	m := newMembership(g.Size())
	return greedyOverDegeneracy(g, func(members []graph.VertexID) bool {
		reset := m.mark(members)
		defer reset()

		size := int64(len(members))
		target := size * (size - 1) / 2
		edges := m.inducedEdgeCount(g, members)
		return target-edges <= k
	})
}
