package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/internal/apperr"
)

// ReadText reads a text edge-list graph from path: a first line "n m",
// then m lines of "u v" 0-based endpoint pairs. Each undirected edge is
// expected once; BuildFromEdges adds symmetry and drops self-loops and
// duplicates during normalisation.
func ReadText(path string) (*graph.CSRGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeLoadError, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	g, err := readTextFrom(f)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeFormatError, fmt.Sprintf("parsing %s", path), err)
	}
	return g, nil
}

func readTextFrom(r io.Reader) (*graph.CSRGraph, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	var n, m int32
	if _, err := fmt.Fscan(br, &n, &m); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	edges := make([]graph.Edge, 0, m)
	for i := int32(0); i < m; i++ {
		var u, v int32
		if _, err := fmt.Fscan(br, &u, &v); err != nil {
			return nil, fmt.Errorf("reading edge %d: %w", i, err)
		}
		edges = append(edges, graph.Edge{U: u, V: v})
	}

	g, err := graph.BuildFromEdges(n, edges)
	if err != nil {
		return nil, err
	}
	return g, nil
}
