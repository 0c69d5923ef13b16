package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cliquemine/graph"
)

// Sentinel errors identifying which membership condition a solution
// failed. Wrapped with the offending vertex or count via fmt.Errorf's %w
// so callers can both match on the sentinel and print the detail.
var (
	ErrNotKPlex        = errors.New("validate: not a k-plex")
	ErrNotKDefective   = errors.New("validate: not a k-defective clique")
	ErrNotQuasiClique  = errors.New("validate: not a gamma-quasi-clique")
	ErrNotPseudoClique = errors.New("validate: not a gamma-pseudo-clique")
	ErrEmptySolution   = errors.New("validate: empty solution")
)

func membershipSet(members []graph.VertexID) map[graph.VertexID]bool {
	set := make(map[graph.VertexID]bool, len(members))
	for _, v := range members {
		set[v] = true
	}
	return set
}

// inducedDegree returns u's degree within the induced subgraph on members.
func inducedDegree(g *graph.CSRGraph, u graph.VertexID, members map[graph.VertexID]bool) int32 {
	var d int32
	for _, v := range g.Neighbours(u) {
		if members[v] {
			d++
		}
	}
	return d
}

// inducedEdgeCount counts g's edges with both endpoints in members.
func inducedEdgeCount(g *graph.CSRGraph, memberList []graph.VertexID, members map[graph.VertexID]bool) int64 {
	var count int64
	for _, u := range memberList {
		for _, v := range g.Neighbours(u) {
			if u < v && members[v] {
				count++
			}
		}
	}
	return count
}

// ceilInt returns ceil(x) for a non-negative float, as int32.
func ceilInt(x float64) int32 {
	i := int32(x)
	if float64(i) < x {
		i++
	}
	return i
}

// KPlex verifies that every vertex in members has at least len(members)-k
// neighbours within members.
//
// Complexity: O(sum of deg(u) for u in members).
func KPlex(g *graph.CSRGraph, members []graph.VertexID, k int32) error {
	if len(members) == 0 {
		return ErrEmptySolution
	}
	threshold := int32(len(members)) - k
	set := membershipSet(members)
	for _, u := range members {
		if d := inducedDegree(g, u, set); d < threshold {
			return fmt.Errorf("%w: vertex %d has in-set degree %d, need >= %d", ErrNotKPlex, u, d, threshold)
		}
	}
	return nil
}

// KDefective verifies that the induced subgraph on members is missing at
// most k edges from a clique on members.
//
// Complexity: O(sum of deg(u) for u in members).
func KDefective(g *graph.CSRGraph, members []graph.VertexID, k int32) error {
	if len(members) == 0 {
		return ErrEmptySolution
	}
	set := membershipSet(members)
	size := int64(len(members))
	target := size * (size - 1) / 2
	missing := target - inducedEdgeCount(g, members, set)
	if missing > int64(k) {
		return fmt.Errorf("%w: missing %d edges, allowed <= %d", ErrNotKDefective, missing, k)
	}
	return nil
}

// QuasiClique verifies that every vertex in members has in-set degree at
// least ceil(alpha*(len(members)-1)).
//
// Complexity: O(sum of deg(u) for u in members).
func QuasiClique(g *graph.CSRGraph, members []graph.VertexID, alpha float64) error {
	if len(members) == 0 {
		return ErrEmptySolution
	}
	threshold := ceilInt(alpha * float64(len(members)-1))
	set := membershipSet(members)
	for _, u := range members {
		if d := inducedDegree(g, u, set); d < threshold {
			return fmt.Errorf("%w: vertex %d has in-set degree %d, need >= %d", ErrNotQuasiClique, u, d, threshold)
		}
	}
	return nil
}

// PseudoClique verifies that the induced edge count on members is at
// least ceil(0.5*alpha*len(members)*(len(members)-1)).
//
// Complexity: O(sum of deg(u) for u in members).
func PseudoClique(g *graph.CSRGraph, members []graph.VertexID, alpha float64) error {
	if len(members) == 0 {
		return ErrEmptySolution
	}
	set := membershipSet(members)
	size := float64(len(members))
	threshold := ceilInt(0.5 * alpha * size * (size - 1))
	edges := inducedEdgeCount(g, members, set)
	if edges < int64(threshold) {
		return fmt.Errorf("%w: induced edge count %d, need >= %d", ErrNotPseudoClique, edges, threshold)
	}
	return nil
}
