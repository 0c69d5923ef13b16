package refine

import (
	"math"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/solvers"
)

// Problem factors out the two capabilities the driver needs from each of
// the four mining problems, in place of inheritance: a feasibility check
// and a per-vertex upper-bound prune, plus the matching NaiveSolver to
// recurse into.
type Problem interface {
	// Solve runs this problem's NaiveSolver over g and returns its answer.
	Solve(g *graph.CSRGraph) solvers.Result

	// Feasible reports whether members, as a vertex set of g, satisfies
	// this problem's membership condition.
	Feasible(members []graph.VertexID, g *graph.CSRGraph) bool

	// VertexPrune reports whether a vertex of degree deg can be safely
	// skipped as an ego centre, given the current best answer size.
	VertexPrune(deg int32, bestSize int) bool
}

// KPlexProblem is the k-plex Problem: every member needs at least |S|-K
// neighbours within S.
type KPlexProblem struct {
	K int32
}

func (p KPlexProblem) Solve(g *graph.CSRGraph) solvers.Result {
	return solvers.KPlexDegen(g, solvers.WithK(p.K)).Result
}

func (p KPlexProblem) Feasible(members []graph.VertexID, g *graph.CSRGraph) bool {
	return feasibleDegreeAtLeast(members, g, int32(len(members))-p.K)
}

// VertexPrune: deg(u) <= |best| - k excludes u, since u's own in-S degree
// can never exceed its global degree.
func (p KPlexProblem) VertexPrune(deg int32, bestSize int) bool {
	return deg <= int32(bestSize)-p.K
}

// KDefProblem is the k-defective-clique Problem: the induced subgraph may
// be missing at most K edges from a clique.
type KDefProblem struct {
	K int32
}

func (p KDefProblem) Solve(g *graph.CSRGraph) solvers.Result {
	return solvers.KDefNaive(g, solvers.WithKDef(p.K))
}

func (p KDefProblem) Feasible(members []graph.VertexID, g *graph.CSRGraph) bool {
	size := int64(len(members))
	target := size * (size - 1) / 2
	return target-inducedEdgeCount(members, g) <= int64(p.K)
}

func (p KDefProblem) VertexPrune(deg int32, bestSize int) bool {
	return deg <= int32(bestSize)
}

// QuasiProblem is the γ-quasi-clique Problem: every member's in-S degree
// must be at least ceil(alpha*(|S|-1)).
type QuasiProblem struct {
	Alpha float64
}

func (p QuasiProblem) Solve(g *graph.CSRGraph) solvers.Result {
	return solvers.QuasiNaive(g, solvers.WithAlpha(p.Alpha))
}

func (p QuasiProblem) Feasible(members []graph.VertexID, g *graph.CSRGraph) bool {
	threshold := ceilInt(p.Alpha * float64(len(members)-1))
	return feasibleDegreeAtLeast(members, g, threshold)
}

func (p QuasiProblem) VertexPrune(deg int32, bestSize int) bool {
	return deg <= ceilInt(p.Alpha*float64(bestSize-1))
}

// PseudoProblem is the γ-pseudo-clique Problem: the induced edge count
// must be at least ceil(0.5*alpha*|S|*(|S|-1)).
type PseudoProblem struct {
	Alpha float64
}

func (p PseudoProblem) Solve(g *graph.CSRGraph) solvers.Result {
	return solvers.PseudoNaive(g, solvers.WithPseudoAlpha(p.Alpha))
}

func (p PseudoProblem) Feasible(members []graph.VertexID, g *graph.CSRGraph) bool {
	size := float64(len(members))
	threshold := ceilInt(0.5 * p.Alpha * size * (size - 1))
	return inducedEdgeCount(members, g) >= int64(threshold)
}

func (p PseudoProblem) VertexPrune(deg int32, bestSize int) bool {
	return deg <= int32(math.Floor(p.Alpha*float64(bestSize)))
}

// feasibleDegreeAtLeast reports whether every vertex in members has
// induced degree (within members) at least threshold.
func feasibleDegreeAtLeast(members []graph.VertexID, g *graph.CSRGraph, threshold int32) bool {
	included := make(map[graph.VertexID]bool, len(members))
	for _, v := range members {
		included[v] = true
	}
	for _, u := range members {
		var d int32
		for _, v := range g.Neighbours(u) {
			if included[v] {
				d++
			}
		}
		if d < threshold {
			return false
		}
	}
	return true
}

// inducedEdgeCount counts edges of g with both endpoints in members.
func inducedEdgeCount(members []graph.VertexID, g *graph.CSRGraph) int64 {
	included := make(map[graph.VertexID]bool, len(members))
	for _, v := range members {
		included[v] = true
	}
	var count int64
	for _, u := range members {
		for _, v := range g.Neighbours(u) {
			if u < v && included[v] {
				count++
			}
		}
	}
	return count
}

// ceilInt returns ceil(x) for a non-negative float, as int32 — mirrors
// solvers' own threshold rounding for the same quasi/pseudo formulas.
func ceilInt(x float64) int32 {
	i := int32(x)
	if float64(i) < x {
		i++
	}
	return i
}
