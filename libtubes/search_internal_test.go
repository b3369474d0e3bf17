package libtubes

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestForEachCombination(t *testing.T) {
	var combos [][]int
	forEachCombination(4, 2, func(idx []int) {
		combos = append(combos, append([]int(nil), idx...))
	})
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, combos)

	count := 0
	forEachCombination(3, 0, func(idx []int) {
		require.Empty(t, idx)
		count++
	})
	require.Equal(t, 1, count)

	forEachCombination(2, 3, func(idx []int) {
		t.Fatal("no 3-combinations of 2 items")
	})
}

func TestBrokenFlipGraph(t *testing.T) {
	G := NewGraph([]gotubes.Edge{{1, 2}, {2, 3}, {3, 4}})
	fg, err := NewFlipGraph(G)
	require.NoError(t, err)

	for vi := range fg.flips {
		fg.flips[vi] = fg.flips[vi][:0]
	}

	rng := rand.New(rand.NewPCG(3, 4))
	_, err = fg.TryOnce(rng, gotubes.Mode_Paths)
	require.ErrorIs(t, err, gotubes.ErrBrokenFlipGraph)
}

func TestEdgeSetKey(t *testing.T) {
	A := NewGraph([]gotubes.Edge{{1, 2}, {2, 3}})
	B := NewGraph([]gotubes.Edge{{3, 2}, {2, 1}, {1, 2}})
	C := NewGraph([]gotubes.Edge{{1, 2}, {1, 3}})

	require.Equal(t, AppendEdgeSetKey(nil, A), AppendEdgeSetKey(nil, B))
	require.NotEqual(t, AppendEdgeSetKey(nil, A), AppendEdgeSetKey(nil, C))
}

func TestResolveAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w1, w2 := &Walk{Start: 1}, &Walk{Start: 2}

	// A trial that raced with cancellation must not discard a stored witness
	res := &SearchResult{Outcome: gotubes.Outcome_NotFound}
	require.NoError(t, res.resolve(ctx, []*Walk{nil, w1, w2}, context.Canceled))
	require.Equal(t, gotubes.Outcome_Found, res.Outcome)
	require.Same(t, w1, res.Walk)

	res = &SearchResult{Outcome: gotubes.Outcome_NotFound}
	require.ErrorIs(t, res.resolve(ctx, []*Walk{nil, nil}, context.Canceled), context.Canceled)
	require.ErrorIs(t, res.resolve(ctx, []*Walk{nil, nil}, nil), context.Canceled)
	require.Nil(t, res.Walk)

	// Invariant violations surface even if another trial succeeded
	broken := errors.Wrap(gotubes.ErrBrokenFlipGraph, "tubing 0")
	require.ErrorIs(t, res.resolve(ctx, []*Walk{w2}, broken), gotubes.ErrBrokenFlipGraph)

	res = &SearchResult{Outcome: gotubes.Outcome_NotFound}
	require.NoError(t, res.resolve(context.Background(), []*Walk{nil, nil}, nil))
	require.Equal(t, gotubes.Outcome_NotFound, res.Outcome)
}
