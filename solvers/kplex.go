package solvers

import "github.com/katalvlaran/cliquemine/graph"

// KPlexOptions configures KPlexDegen. K follows the same functional-option
// shape as the rest of this module's solvers even though it is a single
// scalar, so a future cancellation token or variant knob has somewhere to
// live without changing call sites.
type KPlexOptions struct {
	K int32
}

// KPlexOption mutates a KPlexOptions during construction.
type KPlexOption func(*KPlexOptions)

// WithK sets the k-plex slack parameter: every member needs at least
// |S|-k neighbours in S.
func WithK(k int32) KPlexOption {
	return func(o *KPlexOptions) { o.K = k }
}

func defaultKPlexOptions() KPlexOptions {
	return KPlexOptions{K: 1}
}

// KPlexDegen is Algorithm 2 (kPlex-Degen): degeneracy peeling with a live
// upper bound. At each step, popping the globally smallest-degree
// remaining vertex v of degree d, the remaining set (v included) is a
// valid k-plex exactly when d+k >= remaining, since every member's in-set
// degree is then at least remaining-k. The largest such remaining set
// seen is kept; ties (equal size) do not replace — the first one found
// wins, which degeneracyPeel's "remaining > best" comparison already
// guarantees by construction of the peeling order.
//
// Complexity: O(n + m).
func KPlexDegen(g *graph.CSRGraph, opts ...KPlexOption) KPlexResult {
	cfg := defaultKPlexOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k := cfg.K

	outcome := degeneracyPeel(
		g,
		func(d, remaining int32) bool { return d+k >= remaining },
		func(d, remaining int32) int32 {
			if d+k < remaining {
				return d + k
			}
			return remaining
		},
	)
	return KPlexResult{
		Result:     Result{Members: outcome.members, Size: len(outcome.members)},
		UpperBound: outcome.ub,
	}
}
