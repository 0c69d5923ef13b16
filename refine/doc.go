// Package refine implements the RefinementDriver: the ego-network
// refinement loop shared by all four mining problems. For each vertex u,
// in ascending id order, it builds a small candidate set around u (its
// degeneracy-forward neighbours, optionally extended one more hop),
// extracts the induced subgraph, and recurses a NaiveSolver over that
// subgraph looking for an answer better than the best found so far.
//
// The four problems are factored out behind the Problem interface so the
// driver itself carries no problem-specific logic.
package refine
