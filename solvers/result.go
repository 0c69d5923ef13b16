package solvers

import "github.com/katalvlaran/cliquemine/graph"

// Result is the answer a NaiveSolver (or the RefinementDriver recursing
// into one) produces: the member vertex ids, in the numbering of whatever
// graph the solver ran over, and the set size.
type Result struct {
	Members []graph.VertexID
	Size    int
}

// KPlexResult additionally carries the live upper bound kPlexDegen
// discovers during its peel — an upper bound on any k-plex this peeling
// order could have found, not a global optimum bound.
type KPlexResult struct {
	Result
	UpperBound int32
}
