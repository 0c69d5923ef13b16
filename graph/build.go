package graph

import "sort"

// Edge is a single undirected endpoint pair as consumed by BuildFromEdges.
// Callers need not supply both directions or worry about duplicates or
// self-loops — BuildFromEdges normalises all of that away, per the loader
// contract in the text and binary graph formats.
type Edge struct {
	U, V VertexID
}

// BuildFromEdges constructs a CSRGraph on n vertices from a raw edge list,
// normalising it the way every loader in this module relies on:
//   - self-loops (U == V) are dropped silently,
//   - duplicate edges are dropped silently,
//   - symmetry is added: each accepted {U, V} produces both U->V and V->U.
//
// Complexity: O(n + E log E) for the sort-based dedup pass.
func BuildFromEdges(n VertexID, edges []Edge) (*CSRGraph, error) {
	if int64(n) > maxVertices || n < 0 {
		return nil, ErrTooManyVertices
	}
	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, ErrVertexOutOfRange
		}
	}

	// Collect both directions, dropping self-loops as they are seen, then
	// sort+dedup per source vertex: the sort brings duplicates together so
	// a single linear scan can drop them.
	type pair struct{ u, v int32 }
	pairs := make([]pair, 0, 2*len(edges))
	for _, e := range edges {
		if e.U == e.V {
			continue // self-loop, dropped
		}
		pairs = append(pairs, pair{e.U, e.V}, pair{e.V, e.U})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].u != pairs[j].u {
			return pairs[i].u < pairs[j].u
		}
		return pairs[i].v < pairs[j].v
	})

	// Dedup in place.
	unique := pairs[:0]
	for i, p := range pairs {
		if i > 0 && p == pairs[i-1] {
			continue
		}
		unique = append(unique, p)
	}

	off := make([]int32, n+1)
	for _, p := range unique {
		off[p.u+1]++
	}
	for u := VertexID(0); u < n; u++ {
		off[u+1] += off[u]
	}

	e := make([]int32, len(unique))
	cursor := make([]int32, n)
	copy(cursor, off[:n])
	for _, p := range unique {
		e[cursor[p.u]] = p.v
		cursor[p.u]++
	}

	return &CSRGraph{off: off, e: e, n: n, m: int64(len(unique)) / 2}, nil
}
