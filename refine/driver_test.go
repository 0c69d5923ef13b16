package refine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/degeneracy"
	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/refine"
)

func buildAndRank(t *testing.T, n graph.VertexID, edges []graph.Edge) (*graph.CSRGraph, []int32) {
	t.Helper()
	g, err := graph.BuildFromEdges(n, edges)
	require.NoError(t, err)
	ordering := degeneracy.Ordering(g)
	rank := degeneracy.Rank(ordering)
	degeneracy.SortNeighboursByReverseRank(g, rank)
	return g, rank
}

func cliqueEdges(n graph.VertexID) []graph.Edge {
	var edges []graph.Edge
	for i := graph.VertexID(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.Edge{U: i, V: j})
		}
	}
	return edges
}

func TestDriverKPlexOnK5(t *testing.T) {
	g, rank := buildAndRank(t, 5, cliqueEdges(5))
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.KPlexProblem{K: 1}, false)
	require.Equal(t, 5, result.Size)
	require.ElementsMatch(t, []int32{0, 1, 2, 3, 4}, result.Members)
}

func TestDriverKPlexOnTwoTriangles(t *testing.T) {
	g, rank := buildAndRank(t, 6, []graph.Edge{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
	})
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.KPlexProblem{K: 1}, false)
	require.Equal(t, 3, result.Size)
}

func TestDriverKDefOnK5MinusOneEdge(t *testing.T) {
	edges := cliqueEdges(5)
	edges = removeEdgeFrom(edges, 0, 1)
	g, rank := buildAndRank(t, 5, edges)
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.KDefProblem{K: 1}, true)
	require.Equal(t, 5, result.Size)
}

func TestDriverKDefOnK5MinusTwoDisjointEdges(t *testing.T) {
	edges := cliqueEdges(5)
	edges = removeEdgeFrom(edges, 0, 1)
	edges = removeEdgeFrom(edges, 2, 3)
	g, rank := buildAndRank(t, 5, edges)
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.KDefProblem{K: 1}, true)
	require.Equal(t, 4, result.Size)
}

func TestDriverQuasiOnPathP6(t *testing.T) {
	var edges []graph.Edge
	for i := graph.VertexID(0); i < 5; i++ {
		edges = append(edges, graph.Edge{U: i, V: i + 1})
	}
	g, rank := buildAndRank(t, 6, edges)
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.QuasiProblem{Alpha: 0.5}, true)
	require.GreaterOrEqual(t, result.Size, 3)
}

func TestDriverPseudoOnK4PlusIsolatedVertex(t *testing.T) {
	g, rank := buildAndRank(t, 5, []graph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
	d := refine.NewDriver(g.Size())

	result := d.Run(context.Background(), g, rank, refine.PseudoProblem{Alpha: 0.6}, true)
	require.Equal(t, 4, result.Size)
}

// TestDriverMonotonicity checks that enabling 2-hop expansion never finds
// a smaller answer than 1-hop, which in turn never falls below the naive seed —
// on a graph large enough for the ego radius to matter.
func TestDriverMonotonicity(t *testing.T) {
	var edges []graph.Edge
	for i := graph.VertexID(0); i < 8; i++ {
		for j := i + 1; j < 8; j++ {
			if (i+j)%3 != 0 {
				edges = append(edges, graph.Edge{U: i, V: j})
			}
		}
	}
	g, rank := buildAndRank(t, 8, edges)

	seed := refine.QuasiProblem{Alpha: 0.6}.Solve(g)

	d1 := refine.NewDriver(g.Size())
	oneHop := d1.Run(context.Background(), g, rank, refine.QuasiProblem{Alpha: 0.6}, false)

	d2 := refine.NewDriver(g.Size())
	twoHop := d2.Run(context.Background(), g, rank, refine.QuasiProblem{Alpha: 0.6}, true)

	require.GreaterOrEqual(t, oneHop.Size, seed.Size)
	require.GreaterOrEqual(t, twoHop.Size, oneHop.Size)
}

// TestDriverDeterminism checks two runs on identical input agree.
func TestDriverDeterminism(t *testing.T) {
	g, rank := buildAndRank(t, 6, []graph.Edge{
		{0, 1}, {1, 2}, {0, 2},
		{3, 4}, {4, 5}, {3, 5},
		{2, 3},
	})

	d1 := refine.NewDriver(g.Size())
	r1 := d1.Run(context.Background(), g, rank, refine.KPlexProblem{K: 1}, true)

	d2 := refine.NewDriver(g.Size())
	r2 := d2.Run(context.Background(), g, rank, refine.KPlexProblem{K: 1}, true)

	require.Equal(t, r1.Size, r2.Size)
	require.ElementsMatch(t, r1.Members, r2.Members)
}

func removeEdgeFrom(edges []graph.Edge, u, v graph.VertexID) []graph.Edge {
	out := edges[:0]
	for _, e := range edges {
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			continue
		}
		out = append(out, e)
	}
	return out
}
