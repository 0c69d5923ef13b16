// Package cliquemine mines relaxed-clique subgraphs from large, simple,
// undirected graphs: k-plex, k-defective clique, gamma-quasi-clique, and
// gamma-pseudo-clique, via a degeneracy-ordered ego-network refinement
// engine.
//
// The module is organized as:
//
//	bucketheap/ — linear-bucket min-priority queue over small integer degrees
//	graph/      — CSR graph representation, induced-subgraph extraction
//	degeneracy/ — degeneracy ordering, rank, reverse-rank neighbour sort
//	solvers/    — the four NaiveSolvers (one per problem)
//	refine/     — the RefinementDriver and its Problem interface
//	validate/   — post-hoc membership validators
//	loader/     — text and binary graph file readers, text writer
//	engine/     — orchestration facade tying the above together
//	config/     — CLI default configuration
//	cmd/cliquemine/ — the mine and convert subcommands
//
//	go install github.com/katalvlaran/cliquemine/cmd/cliquemine@latest
package cliquemine
