package graph

import "sort"

// Scratch holds the two reusable buffers subgraph extraction needs across
// many calls: Included marks current candidate-set membership, VMap maps
// an original vertex id to its position in the vertex set currently being
// materialised. Both are lazily cleared — only the indices touched by one
// call are reset before the next — so a RefinementDriver can hold a single
// Scratch across its whole outer loop instead of allocating O(n) buffers
// per iteration.
//
// Included is owned by callers outside this package (the refinement
// driver uses it for ego-set membership dedup as well); SubgraphDegen only
// reads it. VMap is owned and lazily cleared by SubgraphDegen itself.
type Scratch struct {
	Included []bool
	VMap     []int32
}

// NewScratch allocates a Scratch sized for a graph of n vertices.
func NewScratch(n VertexID) *Scratch {
	vm := make([]int32, n)
	for i := range vm {
		vm[i] = Absent
	}
	return &Scratch{Included: make([]bool, n), VMap: vm}
}

// Subgraph returns the induced subgraph on vertices, renumbered 0..len-1 in
// the order given. Duplicates in vertices are rejected with
// ErrDuplicateVertex.
//
// Complexity: O(|V'| + sum of deg(v) for v in vertices + |E'| log|E'|) —
// the edge list collected from full neighbour scans is sorted to group it
// by new source id before the offset fill, since (unlike SubgraphDegen)
// there is no degeneracy-rank order available here to avoid the sort.
func (g *CSRGraph) Subgraph(vertices []VertexID) (*CSRGraph, error) {
	vMap := make([]int32, g.n)
	for i := range vMap {
		vMap[i] = Absent
	}
	for i, v := range vertices {
		if v < 0 || v >= g.n {
			return nil, ErrVertexOutOfRange
		}
		if vMap[v] != Absent {
			return nil, ErrDuplicateVertex
		}
		vMap[v] = int32(i)
	}

	type pair struct{ u, v int32 }
	var edges []pair
	for _, u := range vertices {
		newU := vMap[u]
		for _, v := range g.Neighbours(u) {
			if newV := vMap[v]; newV != Absent {
				edges = append(edges, pair{newU, newV})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	k := int32(len(vertices))
	off := make([]int32, k+1)
	for _, p := range edges {
		off[p.u+1]++
	}
	for u := VertexID(0); u < k; u++ {
		off[u+1] += off[u]
	}
	e := make([]int32, len(edges))
	cursor := make([]int32, k)
	copy(cursor, off[:k])
	for _, p := range edges {
		e[cursor[p.u]] = p.v
		cursor[p.u]++
	}

	return &CSRGraph{off: off, e: e, n: k, m: int64(len(edges)) / 2}, nil
}

// SubgraphDegen extracts the induced subgraph on vertices, assuming every
// vertex's neighbour list is already sorted by descending rank (as
// degeneracy.SortNeighboursByReverseRank leaves it). It builds the result
// in O(|V'| + |E'|) — no sort — by exploiting that rank order: walking a
// vertex's neighbour list and breaking at the first rank[v] < rank[u]
// yields exactly its degeneracy-forward neighbours, so every induced edge
// is discovered exactly once, from its lower-rank endpoint, and the
// symmetric partner written directly without a second discovery pass.
//
// vertices must all be marked in scratch.Included by the caller (the
// refinement driver's ego-set construction does this as it builds the
// vertex list); SubgraphDegen only uses and then clears scratch.VMap.
// New ids are assigned by position in vertices, matching Subgraph's
// convention.
func (g *CSRGraph) SubgraphDegen(vertices []VertexID, rank []int32, scratch *Scratch) (*CSRGraph, error) {
	k := int32(len(vertices))
	for i, v := range vertices {
		if v < 0 || v >= g.n || scratch.VMap[v] != Absent {
			for _, w := range vertices[:i] {
				scratch.VMap[w] = Absent
			}
			if v < 0 || v >= g.n {
				return nil, ErrVertexOutOfRange
			}
			return nil, ErrDuplicateVertex
		}
		scratch.VMap[v] = int32(i)
	}
	defer func() {
		for _, v := range vertices {
			scratch.VMap[v] = Absent
		}
	}()

	deg := make([]int32, k)
	for i, u := range vertices {
		for _, v := range g.Neighbours(u) {
			if rank[v] < rank[u] {
				break
			}
			if scratch.Included[v] {
				j := scratch.VMap[v]
				deg[i]++
				deg[j]++
			}
		}
	}

	off := make([]int32, k+1)
	for i := VertexID(0); i < k; i++ {
		off[i+1] = off[i] + deg[i]
	}
	e := make([]int32, off[k])
	cursor := make([]int32, k)
	copy(cursor, off[:k])

	for i, u := range vertices {
		for _, v := range g.Neighbours(u) {
			if rank[v] < rank[u] {
				break
			}
			if scratch.Included[v] {
				j := scratch.VMap[v]
				e[cursor[i]] = j
				cursor[i]++
				e[cursor[j]] = int32(i)
				cursor[j]++
			}
		}
	}

	return &CSRGraph{off: off, e: e, n: k, m: int64(off[k]) / 2}, nil
}
