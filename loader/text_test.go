package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquemine/loader"
)

func TestReadTextThenWriteTextIsStable(t *testing.T) {
	content := "5 4\n0 1\n1 2\n2 3\n3 4\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := loader.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, int32(5), g.Size())
	require.Equal(t, int64(4), g.NumEdges())

	var buf bytes.Buffer
	require.NoError(t, loader.WriteText(&buf, g))

	g2, err := loader.ReadText(path)
	require.NoError(t, err)

	var buf2 bytes.Buffer
	require.NoError(t, loader.WriteText(&buf2, g2))
	require.Equal(t, buf.String(), buf2.String())
}

func TestReadTextDropsSelfLoopsAndDuplicates(t *testing.T) {
	content := "3 3\n0 0\n0 1\n0 1\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := loader.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, int64(1), g.NumEdges())
}

func TestReadTextSymmetry(t *testing.T) {
	content := "3 1\n0 1\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := loader.ReadText(path)
	require.NoError(t, err)
	require.Contains(t, g.Neighbours(0), int32(1))
	require.Contains(t, g.Neighbours(1), int32(0))
}

func TestWriteTextFormat(t *testing.T) {
	content := "2 1\n0 1\n"
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	g, err := loader.ReadText(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.WriteText(&buf, g))
	require.Equal(t, "2 1\r\n0 1\r\n1 0\r\n", buf.String())
}
