package degeneracy

import (
	"github.com/katalvlaran/cliquemine/bucketheap"
	"github.com/katalvlaran/cliquemine/graph"
)

// Ordering computes the degeneracy ordering of g: the permutation obtained
// by repeatedly removing a vertex of smallest current degree.
// ordering[i] is the i-th vertex removed (0 = first removed).
//
// Complexity: O(n + m) — each vertex is popped once and each edge triggers
// at most one decrement on each endpoint.
func Ordering(g *graph.CSRGraph) []graph.VertexID {
	n := g.Size()
	degrees := make([]int32, n)
	for v := graph.VertexID(0); v < n; v++ {
		degrees[v] = g.Degree(v)
	}

	heap := bucketheap.New(n, n, degrees)
	ordering := make([]graph.VertexID, 0, n)
	for i := graph.VertexID(0); i < n; i++ {
		u, _ := heap.PopMin()
		ordering = append(ordering, u)
		for _, v := range g.Neighbours(u) {
			heap.Decrement(v, 1)
		}
	}
	return ordering
}

// Rank inverts an ordering permutation: Rank(ordering)[v] is v's position
// in ordering, i.e. how early v was peeled.
func Rank(ordering []graph.VertexID) []int32 {
	rank := make([]int32, len(ordering))
	for i, v := range ordering {
		rank[v] = int32(i)
	}
	return rank
}

// SortNeighboursByReverseRank resorts every vertex's neighbour list by
// descending rank. After this call, iterating a vertex u's neighbour list
// and stopping at the first v with rank[v] < rank[u] yields exactly u's
// degeneracy-forward neighbours — the prefix the refinement driver and
// graph.SubgraphDegen both rely on to truncate early.
func SortNeighboursByReverseRank(g *graph.CSRGraph, rank []int32) {
	g.SortNeighboursBy(func(a, b graph.VertexID) bool { return rank[a] > rank[b] })
}

// Degeneracy returns the degeneracy of g — the maximum, over the peeling
// sequence, of the degree each vertex had in the subgraph induced by
// itself and the vertices not yet peeled. It is a read-back check used by
// tests, not needed by the mining algorithms themselves.
func Degeneracy(g *graph.CSRGraph, ordering []graph.VertexID) int32 {
	n := g.Size()
	rank := Rank(ordering)
	removedBefore := func(v graph.VertexID, i int32) bool { return rank[v] < i }

	var maxMinDeg int32
	for i := graph.VertexID(0); i < n; i++ {
		u := ordering[i]
		var liveDeg int32
		for _, v := range g.Neighbours(u) {
			if !removedBefore(v, i) {
				liveDeg++
			}
		}
		if liveDeg > maxMinDeg {
			maxMinDeg = liveDeg
		}
	}
	return maxMinDeg
}
