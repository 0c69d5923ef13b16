package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/graph"
)

func TestSubgraphInducesOnlyGivenVertices(t *testing.T) {
	// Path 0-1-2-3; subgraph on {0,1,2} should keep the 0-1 and 1-2 edges only.
	g, err := graph.BuildFromEdges(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	sub, err := g.Subgraph([]int32{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, int32(3), sub.Size())
	require.Equal(t, int64(2), sub.NumEdges())
	require.ElementsMatch(t, []int32{1}, sub.Neighbours(0))
	require.ElementsMatch(t, []int32{0, 2}, sub.Neighbours(1))
}

func TestSubgraphRejectsDuplicates(t *testing.T) {
	g, err := graph.BuildFromEdges(3, []graph.Edge{{0, 1}})
	require.NoError(t, err)

	_, err = g.Subgraph([]int32{0, 0, 1})
	require.ErrorIs(t, err, graph.ErrDuplicateVertex)
}

func TestSubgraphDegenMatchesSubgraphOnClique(t *testing.T) {
	// K4: every ordering works for both extraction paths, so their induced
	// edge sets must agree regardless of how vertices/rank are framed.
	edges := []graph.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graph.BuildFromEdges(4, edges)
	require.NoError(t, err)

	rank := []int32{0, 1, 2, 3}
	g.SortNeighboursBy(func(a, b int32) bool { return rank[a] > rank[b] })

	scratch := graph.NewScratch(4)
	vertices := []int32{0, 1, 2, 3}
	for _, v := range vertices {
		scratch.Included[v] = true
	}

	sub, err := g.SubgraphDegen(vertices, rank, scratch)
	require.NoError(t, err)
	require.Equal(t, int64(6), sub.NumEdges())

	full, err := g.Subgraph(vertices)
	require.NoError(t, err)
	require.Equal(t, full.NumEdges(), sub.NumEdges())
	for i := int32(0); i < 4; i++ {
		require.ElementsMatch(t, full.Neighbours(i), sub.Neighbours(i))
	}

	for _, v := range vertices {
		scratch.Included[v] = false
	}

	// Scratch must be fully reset: lazy-clear invariant.
	for _, v := range scratch.VMap {
		require.Equal(t, graph.Absent, v)
	}
	for _, in := range scratch.Included {
		require.False(t, in)
	}
}

func TestSubgraphDegenOnlyForwardEdgesPerSweep(t *testing.T) {
	// Triangle 0-1-2 with rank = identity (rank[i] = i). From vertex 0's
	// perspective both 1 and 2 are forward; the result must still have
	// exactly 3 edges (not double-counted, not missed).
	g, err := graph.BuildFromEdges(3, []graph.Edge{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, err)
	rank := []int32{0, 1, 2}
	g.SortNeighboursBy(func(a, b int32) bool { return rank[a] > rank[b] })

	scratch := graph.NewScratch(3)
	vertices := []int32{0, 1, 2}
	for _, v := range vertices {
		scratch.Included[v] = true
	}
	sub, err := g.SubgraphDegen(vertices, rank, scratch)
	require.NoError(t, err)
	require.Equal(t, int64(3), sub.NumEdges())
	for i := int32(0); i < 3; i++ {
		require.Equal(t, int32(2), sub.Degree(i))
	}
}
