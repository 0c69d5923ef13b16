package solvers

import (
	"github.com/katalvlaran/cliquemine/bucketheap"
	"github.com/katalvlaran/cliquemine/degeneracy"
	"github.com/katalvlaran/cliquemine/graph"
)

// greedyOverDegeneracy walks g's degeneracy ordering from the
// last-removed vertex back to the first, tentatively adding each one to
// the candidate set and stopping — permanently, not skipping ahead — at
// the first vertex whose addition breaks feasible. This one-shot greedy
// shape (not peeling) is the naive solver shared by k-defective clique and
// the naive variants of quasi- and pseudo-clique.
func greedyOverDegeneracy(g *graph.CSRGraph, feasible func(members []graph.VertexID) bool) Result {
	ordering := degeneracy.Ordering(g)
	members := make([]graph.VertexID, 0, len(ordering))
	for i := len(ordering) - 1; i >= 0; i-- {
		members = append(members, ordering[i])
		if !feasible(members) {
			members = members[:len(members)-1]
			break
		}
	}
	return Result{Members: members, Size: len(members)}
}

// peelOutcome is the raw result of degeneracyPeel, before the caller
// attaches any problem-specific fields.
type peelOutcome struct {
	members []graph.VertexID
	ub      int32
}

// degeneracyPeel repeatedly pops the globally smallest-degree remaining
// vertex from a LinearBucketHeap seeded with live degrees. At each step i
// (0-indexed), with v the popped vertex of degree d and remaining = n-i
// vertices not yet popped (v itself still counted, since it is only
// marked removed after this step's checks), it calls:
//   - feasible(d, remaining): if true and remaining exceeds the best
//     answer found so far, the current remaining set (v included) is
//     recorded as the new best.
//   - bound(d, remaining), if non-nil: folded into a running maximum,
//     exposed as the returned upper bound.
//
// This is the record_candidate(i, d, n, best) frame the two peeling
// NaiveSolvers (k-plex, and the alternative quasi-clique peel) share.
func degeneracyPeel(
	g *graph.CSRGraph,
	feasible func(d, remaining int32) bool,
	bound func(d, remaining int32) int32,
) peelOutcome {
	n := g.Size()
	if n == 0 {
		return peelOutcome{}
	}

	degrees := make([]int32, n)
	for v := graph.VertexID(0); v < n; v++ {
		degrees[v] = g.Degree(v)
	}
	heap := bucketheap.New(n, n, degrees)
	removed := make([]bool, n)

	var best []graph.VertexID
	var ub int32
	for i := int32(0); i < n; i++ {
		v, d := heap.PopMin()
		remaining := n - i

		if feasible(d, remaining) && remaining > int32(len(best)) {
			best = make([]graph.VertexID, 0, remaining)
			for j := graph.VertexID(0); j < n; j++ {
				if !removed[j] {
					best = append(best, j)
				}
			}
		}
		if bound != nil {
			if b := bound(d, remaining); b > ub {
				ub = b
			}
		}

		removed[v] = true
		for _, w := range g.Neighbours(v) {
			if !removed[w] {
				heap.Decrement(w, 1)
			}
		}
	}
	return peelOutcome{members: best, ub: ub}
}
