// Package graph defines CSRGraph, the compressed-sparse-row representation
// the rest of this module mines over: an immutable-topology, move-only
// graph store optimised for neighbour-range iteration and cheap induced
// subgraph materialisation rather than general mutation.
//
// Unlike the mutable, string-keyed adjacency-list graphs elsewhere in this
// codebase's lineage, CSRGraph trades flexibility for locality: vertex ids
// are a dense int32 range, and both the offset table and the concatenated
// neighbour array are owned outright by the graph — no aliasing, no vertex
// objects, borrowed slices only for as long as the graph itself lives.
package graph
