package graph

import (
	"errors"
	"sort"
)

// VertexID identifies a vertex within a CSRGraph's dense numbering.
type VertexID = int32

// Absent marks the lack of a vertex — an unmapped entry in a renumbering
// vector, or an empty linked-list pointer.
const Absent VertexID = -1

// Sentinel errors for CSRGraph construction and subgraph extraction.
var (
	// ErrTooManyVertices indicates a vertex count exceeding the int32 range
	// this package's VertexID numbering supports.
	ErrTooManyVertices = errors.New("graph: vertex count exceeds int32 range")

	// ErrVertexOutOfRange indicates an edge or vertex-set reference outside
	// [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrDuplicateVertex indicates a vertex id appearing more than once in a
	// vertex set passed to Subgraph or SubgraphDegen.
	ErrDuplicateVertex = errors.New("graph: duplicate vertex in vertex set")
)

// maxVertices is the largest vertex count this package's int32 ids can
// index, per spec: |V| <= 2^31 - 1.
const maxVertices = int64(1<<31 - 1)

// CSRGraph is an immutable-topology, undirected simple graph stored as
// compressed sparse rows: off[0..n] gives each vertex's neighbour range in
// the shared e[0..2m] array.
//
// Invariants, established at construction and never broken afterward:
//   - off is monotonically non-decreasing; off[n] == len(e) == 2*m.
//   - no self-loops: e[i] != u for i in [off[u], off[u+1]).
//   - no duplicates within a single vertex's neighbour range.
//   - adjacency is symmetric: u in neighbours(v) iff v in neighbours(u).
//
// CSRGraph is move-only in spirit: pass by pointer, never copy the struct
// by value. Use Clone for an explicit independent copy.
type CSRGraph struct {
	off []int32
	e   []int32
	n   int32
	m   int64
}

// Size returns the vertex count n.
func (g *CSRGraph) Size() VertexID {
	return g.n
}

// NumEdges returns the undirected edge count m (each edge stored once here,
// twice in the adjacency array).
func (g *CSRGraph) NumEdges() int64 {
	return g.m
}

// Degree returns the number of neighbours of u.
func (g *CSRGraph) Degree(u VertexID) int32 {
	return g.off[u+1] - g.off[u]
}

// Neighbours returns u's neighbour ids as a slice backed by the graph's own
// storage. The slice is valid only as long as the graph is not discarded;
// callers must not append to it, only read it or hand it to
// SortNeighboursBy's comparator.
func (g *CSRGraph) Neighbours(u VertexID) []VertexID {
	return g.e[g.off[u]:g.off[u+1]]
}

// SortNeighboursBy sorts every vertex's neighbour range in place according
// to less. The degeneracy core calls this exactly once, after computing
// degeneracy rank, to reorder every neighbour list by descending rank —
// the trick that lets ego-subgraph construction truncate early.
func (g *CSRGraph) SortNeighboursBy(less func(a, b VertexID) bool) {
	for u := VertexID(0); u < g.n; u++ {
		seg := g.Neighbours(u)
		sort.Slice(seg, func(i, j int) bool { return less(seg[i], seg[j]) })
	}
}

// Clone returns an independent deep copy of g. Used where a test or a
// round-trip check must mutate one graph without aliasing another.
func (g *CSRGraph) Clone() *CSRGraph {
	off := make([]int32, len(g.off))
	copy(off, g.off)
	e := make([]int32, len(g.e))
	copy(e, g.e)
	return &CSRGraph{off: off, e: e, n: g.n, m: g.m}
}
