package solvers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/solvers"
)

func TestPseudoNaiveOnK4PlusIsolatedVertex(t *testing.T) {
	g, err := graph.BuildFromEdges(5, []graph.Edge{
		{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3},
	})
	require.NoError(t, err)

	result := solvers.PseudoNaive(g, solvers.WithPseudoAlpha(0.6))
	require.Equal(t, 4, result.Size)
}

func TestPseudoNaiveOnK5(t *testing.T) {
	g := clique(t, 5)

	result := solvers.PseudoNaive(g, solvers.WithPseudoAlpha(0.6))
	require.Equal(t, 5, result.Size)
}
