package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/cliquemine/graph"
)

// WriteText writes g as a text edge list for the converter tool: a first
// line "n m_undirected", then one "\r\n"-terminated line per vertex
// starting with its id and followed by its neighbours in ascending order.
// Callers must pass a graph whose neighbour lists are still in their
// load-time ascending order — not one already resorted by descending rank
// for the mining engine's own use.
func WriteText(w io.Writer, g *graph.CSRGraph) error {
	bw := bufio.NewWriterSize(w, 1<<20)

	if _, err := fmt.Fprintf(bw, "%d %d\r\n", g.Size(), g.NumEdges()); err != nil {
		return err
	}
	for u := graph.VertexID(0); u < g.Size(); u++ {
		if _, err := fmt.Fprintf(bw, "%d", u); err != nil {
			return err
		}
		for _, v := range g.Neighbours(u) {
			if _, err := fmt.Fprintf(bw, " %d", v); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\r\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
