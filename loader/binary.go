package loader

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/cliquemine/graph"
	"github.com/katalvlaran/cliquemine/internal/apperr"
)

// vertexByteSize is the only tt value this loader accepts in b_degree.bin's
// header: a 4-byte vertex id, matching graph.VertexID.
const vertexByteSize = 4

// ReadBinaryDir reads a graph from a directory containing b_degree.bin and
// b_adj.bin: the former holds a 4-byte tt header (expected 4), then n and
// m, then n per-vertex degrees; the latter holds m neighbour ids laid out
// by the prefix sum of those degrees. m here counts directed entries — the
// adjacency is typically already symmetric in this format, and
// graph.BuildFromEdges normalises away any duplication regardless.
func ReadBinaryDir(dir string) (*graph.CSRGraph, error) {
	degrees, n, err := readDegrees(filepath.Join(dir, "b_degree.bin"))
	if err != nil {
		return nil, err
	}

	neighbours, err := readAdjacency(filepath.Join(dir, "b_adj.bin"), degrees)
	if err != nil {
		return nil, err
	}

	var edges []graph.Edge
	cursor := 0
	for u := graph.VertexID(0); u < n; u++ {
		for j := int32(0); j < degrees[u]; j++ {
			v := neighbours[cursor]
			cursor++
			if u < v {
				edges = append(edges, graph.Edge{U: u, V: v})
			}
		}
	}

	g, err := graph.BuildFromEdges(n, edges)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeFormatError, "building graph from binary directory", err)
	}
	return g, nil
}

func readDegrees(path string) ([]int32, int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, apperr.Wrap(apperr.CodeLoadError, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	var tt, n, m int32
	if err := binary.Read(f, binary.LittleEndian, &tt); err != nil {
		return nil, 0, apperr.Wrap(apperr.CodeFormatError, "reading tt header", err)
	}
	if tt != vertexByteSize {
		return nil, 0, apperr.New(apperr.CodeFormatError, fmt.Sprintf("b_degree.bin header mismatch: tt=%d, expected %d", tt, vertexByteSize))
	}
	if err := binary.Read(f, binary.LittleEndian, &n); err != nil {
		return nil, 0, apperr.Wrap(apperr.CodeFormatError, "reading n", err)
	}
	if err := binary.Read(f, binary.LittleEndian, &m); err != nil {
		return nil, 0, apperr.Wrap(apperr.CodeFormatError, "reading m", err)
	}

	degrees := make([]int32, n)
	if err := binary.Read(f, binary.LittleEndian, degrees); err != nil {
		return nil, 0, apperr.Wrap(apperr.CodeFormatError, "reading per-vertex degrees", err)
	}
	return degrees, n, nil
}

func readAdjacency(path string, degrees []int32) ([]int32, error) {
	var total int64
	for _, d := range degrees {
		total += int64(d)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeLoadError, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()

	neighbours := make([]int32, total)
	if err := binary.Read(f, binary.LittleEndian, neighbours); err != nil {
		return nil, apperr.Wrap(apperr.CodeFormatError, "reading b_adj.bin", err)
	}
	return neighbours, nil
}
