// Package solvers implements the four NaiveSolvers this module mines with:
// k-plex, k-defective clique, γ-quasi-clique, and γ-pseudo-clique. All four
// accept a graph.CSRGraph and a small functional-options struct and return
// a Result (KPlexDegen returns a KPlexResult, which embeds one).
//
// Two shared skeletons cover all four:
//   - greedyOverDegeneracy walks the degeneracy ordering back-to-front,
//     tentatively growing a candidate set and stopping at the first
//     infeasible addition. k-defective clique, and the naive variants of
//     quasi- and pseudo-clique, are this skeleton plus a feasibility
//     predicate.
//   - degeneracyPeel walks a LinearBucketHeap of live degrees, popping the
//     globally-smallest-degree vertex each step and checking whether the
//     remaining set already satisfies the target property. k-plex (which
//     additionally tracks a live upper bound) and the peeling variant of
//     quasi-clique are this skeleton plus a feasibility/bound pair.
package solvers
