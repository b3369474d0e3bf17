package libtubes_test

import (
	"testing"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/fine-structures/fliptubes/libtubes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborCheck(t *testing.T) {
	T := gotubes.NewTube
	a := gotubes.Tubing{T(1), T(1, 2), T(1, 2, 3), T(1, 2, 3, 4)}
	b := gotubes.Tubing{T(1), T(1, 2), T(4), T(1, 2, 3, 4)}
	c := gotubes.Tubing{T(2), T(1, 2), T(4), T(1, 2, 3, 4)}

	assert.True(t, libtubes.AreNeighbors(a, b))
	assert.True(t, libtubes.AreNeighbors(b, c))
	assert.False(t, libtubes.AreNeighbors(a, c))
	assert.False(t, libtubes.AreNeighbors(a, a))

	newT, ok := libtubes.NewTube(b, a)
	require.True(t, ok)
	assert.Equal(t, T(4), newT)
}

func symmetricDiff(A, B gotubes.Tubing) int {
	n := 0
	for _, T := range A {
		if !B.Contains(T) {
			n++
		}
	}
	for _, T := range B {
		if !A.Contains(T) {
			n++
		}
	}
	return n
}

func TestNeighborsMatchSymmetricDifference(t *testing.T) {
	tubings := pathGraph(5).Tubings()
	for _, A := range tubings {
		for _, B := range tubings {
			require.Equal(t, symmetricDiff(A, B) == 2, libtubes.AreNeighbors(A, B), "%v vs %v", A, B)
		}
	}
}

func TestFlipGraph(t *testing.T) {
	for _, G := range []*libtubes.Graph{pathGraph(5), completeGraph(4), libtubes.NewGraph([]gotubes.Edge{{1, 2}, {1, 3}, {1, 4}})} {
		fg, err := libtubes.NewFlipGraph(G)
		require.NoError(t, err)
		require.Equal(t, len(G.Tubings()), fg.VertexCount())

		tubes := G.Tubes()
		for vi := range fg.VertexCount() {
			flips := fg.Flips(vi)

			// Each tube of a maximal tubing can be flipped in exactly one way
			require.Len(t, flips, G.VertexCount()-1)

			for _, f := range flips {
				from, to := fg.Tubing(vi), fg.Tubing(f.To)
				require.True(t, libtubes.AreNeighbors(from, to))
				require.True(t, to.Contains(tubes.Tube(f.Tube)))
				require.False(t, from.Contains(tubes.Tube(f.Tube)))

				back := false
				for _, fb := range fg.Flips(f.To) {
					back = back || fb.To == vi
				}
				require.True(t, back, "flip graph must be undirected")
			}
		}
		require.Equal(t, fg.VertexCount()*(G.VertexCount()-1)/2, fg.EdgeCount())
	}

	_, err := libtubes.NewFlipGraph(nil)
	require.ErrorIs(t, err, gotubes.ErrNilGraph)
}
