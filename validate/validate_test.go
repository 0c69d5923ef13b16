package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/validate"
)

func mustBuild(t *testing.T, n graph.VertexID, edges []graph.Edge) *graph.CSRGraph {
	t.Helper()
	g, err := graph.BuildFromEdges(n, edges)
	require.NoError(t, err)
	return g
}

func TestKPlexAcceptsFullClique(t *testing.T) {
	g := mustBuild(t, 5, []graph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	})
	require.NoError(t, validate.KPlex(g, []graph.VertexID{0, 1, 2, 3, 4}, 1))
}

func TestKPlexRejectsInsufficientDegree(t *testing.T) {
	g := mustBuild(t, 4, []graph.Edge{{0, 1}, {1, 2}})
	err := validate.KPlex(g, []graph.VertexID{0, 1, 2, 3}, 1)
	require.ErrorIs(t, err, validate.ErrNotKPlex)
}

func TestKDefectiveAcceptsOneMissingEdge(t *testing.T) {
	g := mustBuild(t, 5, []graph.Edge{
		{0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	})
	require.NoError(t, validate.KDefective(g, []graph.VertexID{0, 1, 2, 3, 4}, 1))
}

func TestKDefectiveRejectsTwoMissingEdges(t *testing.T) {
	g := mustBuild(t, 5, []graph.Edge{
		{0, 2}, {0, 3}, {0, 4},
		{1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	})
	err := validate.KDefective(g, []graph.VertexID{0, 1, 2, 3, 4}, 1)
	require.ErrorIs(t, err, validate.ErrNotKDefective)
}

func TestQuasiCliqueAcceptsPathTriple(t *testing.T) {
	g := mustBuild(t, 3, []graph.Edge{{0, 1}, {1, 2}})
	require.NoError(t, validate.QuasiClique(g, []graph.VertexID{0, 1, 2}, 0.5))
}

func TestPseudoCliqueAcceptsK4(t *testing.T) {
	g := mustBuild(t, 4, []graph.Edge{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	require.NoError(t, validate.PseudoClique(g, []graph.VertexID{0, 1, 2, 3}, 0.6))
}

func TestPseudoCliqueRejectsSparseSet(t *testing.T) {
	g := mustBuild(t, 4, []graph.Edge{{0, 1}})
	err := validate.PseudoClique(g, []graph.VertexID{0, 1, 2, 3}, 0.6)
	require.ErrorIs(t, err, validate.ErrNotPseudoClique)
}

func TestEmptySolutionRejected(t *testing.T) {
	g := mustBuild(t, 3, nil)
	require.ErrorIs(t, validate.KPlex(g, nil, 1), validate.ErrEmptySolution)
}
