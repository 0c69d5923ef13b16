// Package degeneracy computes the degeneracy ordering of a CSRGraph and the
// artefacts derived from it: the rank vector and the reverse-rank neighbour
// sort that lets ego-subgraph construction truncate its neighbour scans
// early.
//
// The ordering itself is peeling by repeated minimum-degree removal, the
// same shape as a Kahn's-algorithm topological sort but keyed on live
// degree rather than live in-degree, and using a bucketheap.Heap instead
// of a zero-in-degree queue so ties resolve deterministically and removal
// is O(1) amortised per vertex.
package degeneracy
