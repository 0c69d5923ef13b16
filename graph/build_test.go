package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/graph"
)

func TestBuildFromEdgesSymmetry(t *testing.T) {
	g, err := graph.BuildFromEdges(4, []graph.Edge{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	require.ElementsMatch(t, []int32{1}, g.Neighbours(0))
	require.ElementsMatch(t, []int32{0, 2}, g.Neighbours(1))
	require.ElementsMatch(t, []int32{1, 3}, g.Neighbours(2))
	require.ElementsMatch(t, []int32{2}, g.Neighbours(3))
	require.Equal(t, int64(3), g.NumEdges())
}

func TestBuildFromEdgesDropsSelfLoopsAndDuplicates(t *testing.T) {
	g, err := graph.BuildFromEdges(3, []graph.Edge{{0, 0}, {0, 1}, {1, 0}, {0, 1}})
	require.NoError(t, err)

	require.Equal(t, int64(1), g.NumEdges())
	require.ElementsMatch(t, []int32{1}, g.Neighbours(0))
	require.ElementsMatch(t, []int32{0}, g.Neighbours(1))
	require.Equal(t, int32(0), g.Degree(2))
}

func TestBuildFromEdgesRejectsOutOfRange(t *testing.T) {
	_, err := graph.BuildFromEdges(2, []graph.Edge{{0, 5}})
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := graph.BuildFromEdges(3, []graph.Edge{{0, 1}, {1, 2}})
	require.NoError(t, err)

	clone := g.Clone()
	clone.SortNeighboursBy(func(a, b int32) bool { return a > b })

	// Mutating the clone's neighbour order must not affect g.
	require.Equal(t, []int32{0, 2}, g.Neighbours(1))
}
