package solvers

import "github.com/katalvlaran/cliquemine/graph"

// membership is a reusable boolean bitmap over a graph's vertex range,
// used by the feasibility predicates to compute induced degree / induced
// edge counts in O(sum of deg(u) for u in members) per check.
type membership struct {
	included []bool
}

func newMembership(n graph.VertexID) *membership {
	return &membership{included: make([]bool, n)}
}

// mark sets members in the bitmap and returns a reset func that clears
// exactly what was set — the same lazy-clear discipline the rest of the
// module uses for its scratch buffers.
func (m *membership) mark(members []graph.VertexID) func() {
	for _, v := range members {
		m.included[v] = true
	}
	return func() {
		for _, v := range members {
			m.included[v] = false
		}
	}
}

// inducedEdgeCount counts edges with both endpoints in members, each
// counted once (via the u < v guard).
func (m *membership) inducedEdgeCount(g *graph.CSRGraph, members []graph.VertexID) int64 {
	var count int64
	for _, u := range members {
		for _, v := range g.Neighbours(u) {
			if u < v && m.included[v] {
				count++
			}
		}
	}
	return count
}

// inducedDegree returns u's degree within the induced subgraph on members.
func (m *membership) inducedDegree(g *graph.CSRGraph, u graph.VertexID) int32 {
	var d int32
	for _, v := range g.Neighbours(u) {
		if m.included[v] {
			d++
		}
	}
	return d
}

// ceilInt returns ceil(x) for a non-negative float, as int32 — used by the
// quasi/pseudo thresholds, which are defined via ceiling/floor of a
// fractional target edge count.
func ceilInt(x float64) int32 {
	i := int32(x)
	if float64(i) < x {
		i++
	}
	return i
}
