package graph

import (
	"errors"
	"math/rand"
)

// ErrInvalidProbability indicates a probability argument outside [0, 1].
var ErrInvalidProbability = errors.New("graph: probability must be in [0, 1]")

// RandomGNP samples an Erdos-Renyi-like simple graph on n vertices: each
// unordered pair {i, j} with i<j is included independently with
// probability p. Sampling is deterministic for a fixed seed, iterating
// pairs in ascending (i, j) order so the trial sequence never depends on
// map iteration or goroutine scheduling.
//
// This is used to generate large synthetic graphs for benchmarking and
// stress-testing the degeneracy/refinement pipeline, where a hand-written
// edge list would be impractical.
//
// Complexity: O(n^2) Bernoulli trials, O(n + m log m) to build the
// CSRGraph via BuildFromEdges.
func RandomGNP(n VertexID, p float64, seed int64) (*CSRGraph, error) {
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))
	var edges []Edge
	for i := VertexID(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, Edge{U: i, V: j})
			}
		}
	}
	return BuildFromEdges(n, edges)
}
