package refine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/solvers"
)

// Driver runs the RefinementDriver outer loop: seed from a whole-graph
// NaiveSolver pass, then for every vertex build an ego subgraph and
// recurse, keeping the largest answer found. It owns a graph.Scratch so
// repeated Run calls (or, within one Run, repeated outer iterations)
// reuse the same O(n) buffers instead of allocating per iteration.
type Driver struct {
	scratch *graph.Scratch
	vSet    []graph.VertexID
}

// NewDriver allocates a Driver sized for graphs of up to n vertices.
func NewDriver(n graph.VertexID) *Driver {
	return &Driver{
		scratch: graph.NewScratch(n),
		vSet:    make([]graph.VertexID, 0, n),
	}
}

// Run executes the refinement loop over g, whose neighbour lists must
// already be sorted by descending rank (degeneracy.SortNeighboursByReverseRank).
// twoHop enables the 2-hop ego extension. ctx is checked once per outer
// iteration; a cancelled context stops the loop early and returns the best
// answer found so far, per the engine's documented cooperative-cancellation
// seam.
func (d *Driver) Run(ctx context.Context, g *graph.CSRGraph, rank []int32, problem Problem, twoHop bool) solvers.Result {
	best := problem.Solve(g)
	n := g.Size()

	for u := graph.VertexID(0); u < n; u++ {
		select {
		case <-ctx.Done():
			return best
		default:
		}

		if problem.VertexPrune(g.Degree(u), best.Size) {
			continue
		}

		vSet := d.buildEgoSet(g, rank, problem, u, best.Size, twoHop)
		if len(vSet) <= best.Size {
			d.clearIncluded(vSet)
			continue
		}

		sub, err := g.SubgraphDegen(vSet, rank, d.scratch)
		if err != nil {
			panic(fmt.Sprintf("refine: invalid ego subgraph for centre %d: %v", u, err))
		}

		subResult := problem.Solve(sub)
		if subResult.Size > best.Size {
			translated := make([]graph.VertexID, len(subResult.Members))
			for i, m := range subResult.Members {
				translated[i] = vSet[m]
			}
			if !problem.Feasible(translated, g) {
				panic(fmt.Sprintf("refine: sub-solver answer for centre %d failed feasibility on translation", u))
			}
			best = solvers.Result{Members: translated, Size: len(translated)}
		}

		d.clearIncluded(vSet)
	}

	return best
}

// buildEgoSet materialises the candidate vertex set around centre u: u
// itself, its degeneracy-forward neighbours (stopping at the first v with
// rank[v] < rank[u], since neighbours are sorted by descending rank), each
// individually vertex-pruned, and — when twoHop is set — those neighbours'
// own degeneracy-forward-of-u neighbours.
//
// Membership is tracked in d.scratch.Included for O(1) dedup; the caller
// must clear it via clearIncluded once done with the returned set.
func (d *Driver) buildEgoSet(g *graph.CSRGraph, rank []int32, problem Problem, u graph.VertexID, bestSize int, twoHop bool) []graph.VertexID {
	vSet := d.vSet[:0]
	vSet = append(vSet, u)
	d.scratch.Included[u] = true

	for _, v := range g.Neighbours(u) {
		if rank[v] < rank[u] {
			break
		}
		if problem.VertexPrune(g.Degree(v), bestSize) {
			continue
		}
		if !d.scratch.Included[v] {
			d.scratch.Included[v] = true
			vSet = append(vSet, v)
		}
	}

	if twoHop {
		oneHopCount := len(vSet)
		for i := 1; i < oneHopCount; i++ {
			v := vSet[i]
			for _, w := range g.Neighbours(v) {
				if rank[w] < rank[u] {
					break
				}
				if problem.VertexPrune(g.Degree(w), bestSize) {
					continue
				}
				if !d.scratch.Included[w] {
					d.scratch.Included[w] = true
					vSet = append(vSet, w)
				}
			}
		}
	}

	d.vSet = vSet
	return vSet
}

// clearIncluded resets d.scratch.Included for exactly the vertices in
// vSet, preserving the lazy-clear discipline the whole module uses for
// its scratch buffers.
func (d *Driver) clearIncluded(vSet []graph.VertexID) {
	for _, v := range vSet {
		d.scratch.Included[v] = false
	}
}
