package libtubes_test

import (
	"strings"
	"testing"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/fine-structures/fliptubes/libtubes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEdges(t *testing.T) {
	edges, err := libtubes.ParseEdges("[(1, 2), (2, 3), (3, 4)]")
	require.NoError(t, err)
	assert.Equal(t, []gotubes.Edge{{1, 2}, {2, 3}, {3, 4}}, edges)

	// Outer brackets are optional and spacing is free
	edges, err = libtubes.ParseEdges("(10,2),( 2 , 30 )")
	require.NoError(t, err)
	assert.Equal(t, []gotubes.Edge{{10, 2}, {2, 30}}, edges)

	for _, bad := range []string{
		"[(1, 2), (2, 3]",
		"[(1, 2, 3)]",
		"[(1, -2)]",
		"[(1.5, 2)]",
		"hello",
	} {
		_, err = libtubes.ParseEdges(bad)
		require.ErrorIs(t, err, gotubes.ErrBadEncoding, "%q", bad)
	}

	_, err = libtubes.ParseEdges("[(1, 4294967296)]")
	require.ErrorIs(t, err, gotubes.ErrBadVtxID)
}

func TestReadGraphs(t *testing.T) {
	input := `[(1, 2), (2, 3), (3, 4), (4, 5)]

[(1, 2), (3, 4)]
[(4, 1), (1, 2)]
`
	graphs, err := libtubes.ReadGraphs(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, graphs, 3)

	assert.Equal(t, 1, graphs[0].SeqID)
	assert.Equal(t, 3, graphs[2].SeqID)
	assert.Equal(t, []gotubes.VtxID{1, 2, 3, 4, 5}, graphs[0].Vertices())
	assert.Equal(t, []gotubes.VtxID{4, 1, 2}, graphs[2].Vertices())
	assert.False(t, graphs[1].IsGraphConnected())

	_, err = libtubes.ReadGraphs(strings.NewReader("[(1, 2)]\n[(1, 2), (x, 3)]\n"))
	require.ErrorIs(t, err, gotubes.ErrBadEncoding)
	require.Contains(t, err.Error(), "line 2")
}
