package loader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/loader"
)

// writeBinaryDir materialises a b_degree.bin/b_adj.bin pair for a
// symmetric adjacency list given as one slice of neighbours per vertex.
func writeBinaryDir(t *testing.T, dir string, adjacency [][]int32) {
	t.Helper()

	n := int32(len(adjacency))
	var m int32
	degrees := make([]int32, n)
	for i, nbrs := range adjacency {
		degrees[i] = int32(len(nbrs))
		m += int32(len(nbrs))
	}

	degFile, err := os.Create(filepath.Join(dir, "b_degree.bin"))
	require.NoError(t, err)
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, int32(4)))
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, n))
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, m))
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, degrees))
	require.NoError(t, degFile.Close())

	adjFile, err := os.Create(filepath.Join(dir, "b_adj.bin"))
	require.NoError(t, err)
	for _, nbrs := range adjacency {
		require.NoError(t, binary.Write(adjFile, binary.LittleEndian, nbrs))
	}
	require.NoError(t, adjFile.Close())
}

func TestReadBinaryDirTriangle(t *testing.T) {
	dir := t.TempDir()
	writeBinaryDir(t, dir, [][]int32{
		{1, 2},
		{0, 2},
		{0, 1},
	})

	g, err := loader.ReadBinaryDir(dir)
	require.NoError(t, err)
	require.Equal(t, int32(3), g.Size())
	require.Equal(t, int64(3), g.NumEdges())
}

func TestReadBinaryDirRejectsBadHeader(t *testing.T) {
	dir := t.TempDir()
	degFile, err := os.Create(filepath.Join(dir, "b_degree.bin"))
	require.NoError(t, err)
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, int32(8)))
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, int32(0)))
	require.NoError(t, binary.Write(degFile, binary.LittleEndian, int32(0)))
	require.NoError(t, degFile.Close())

	_, err = loader.ReadBinaryDir(dir)
	require.Error(t, err)
}
