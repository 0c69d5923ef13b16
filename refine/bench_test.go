package refine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/cliquemine/degeneracy"
	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/refine"
)

// BenchmarkDriverKPlexOnRandomGraph exercises the full ego-subgraph
// refinement loop on a sparse random graph, the shape the engine expects
// in production use rather than the small hand-built fixtures in
// driver_test.go.
func BenchmarkDriverKPlexOnRandomGraph(b *testing.B) {
	g, err := graph.RandomGNP(500, 0.02, 7)
	if err != nil {
		b.Fatal(err)
	}
	ordering := degeneracy.Ordering(g)
	rank := degeneracy.Rank(ordering)
	degeneracy.SortNeighboursByReverseRank(g, rank)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := refine.NewDriver(g.Size())
		_ = d.Run(context.Background(), g, rank, refine.KPlexProblem{K: 2}, true)
	}
}
