package libtubes

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/fine-structures/fliptubes/gotubes"
)

// TubeSet is an ordered set of tubes, where each tube is issued a dense ID (0, 1, 2, ..) in gotubes.CompareTubes order.
//
// A TubeSet is read-only once returned from Graph.Tubes().
type TubeSet struct {
	tree  *redblacktree.Tree // Tube => tube ID (int)
	tubes []gotubes.Tube     // tube ID => Tube
}

func newTubeSet() *TubeSet {
	return &TubeSet{
		tree: redblacktree.NewWith(func(A, B interface{}) int {
			return gotubes.CompareTubes(A.(gotubes.Tube), B.(gotubes.Tube))
		}),
	}
}

// tryAdd adds T if an equal tube is not already present and returns true if T was added.
func (set *TubeSet) tryAdd(T gotubes.Tube) bool {
	if _, found := set.tree.Get(T); found {
		return false
	}
	set.tree.Put(T, -1)
	return true
}

// freeze issues tube IDs in sorted order.  No tubes may be added afterwards.
func (set *TubeSet) freeze() {
	keys := set.tree.Keys()
	set.tubes = make([]gotubes.Tube, len(keys))
	for id, key := range keys {
		T := key.(gotubes.Tube)
		set.tubes[id] = T
		set.tree.Put(T, id)
	}
}

// Len returns the number of tubes in this set.
func (set *TubeSet) Len() int {
	return len(set.tubes)
}

// Tubes returns all tubes in ascending order, indexed by tube ID.  The caller must not modify it.
func (set *TubeSet) Tubes() []gotubes.Tube {
	return set.tubes
}

// Tube returns the tube with the given ID.
func (set *TubeSet) Tube(tubeID int) gotubes.Tube {
	return set.tubes[tubeID]
}

// IDOf returns the ID of the tube equal to T.
func (set *TubeSet) IDOf(T gotubes.Tube) (int, bool) {
	val, found := set.tree.Get(T)
	if !found {
		return -1, false
	}
	return val.(int), true
}

func (set *TubeSet) Contains(T gotubes.Tube) bool {
	_, found := set.tree.Get(T)
	return found
}

// findTubes tests every proper subset of X's vertices for connectivity.
//
// Subsets are drawn as combinations of 0..Nv-1 vertices, so the full vertex set is never itself a tube.
func (X *Graph) findTubes() *TubeSet {
	tubes := newTubeSet()

	Nv := len(X.vtx)
	subset := make([]gotubes.VtxID, 0, Nv)
	for k := 0; k < Nv; k++ {
		forEachCombination(Nv, k, func(idx []int) {
			subset = subset[:0]
			for _, i := range idx {
				subset = append(subset, X.vtx[i])
			}
			if X.IsConnected(subset) {
				tubes.tryAdd(gotubes.NewTube(subset...))
			}
		})
	}

	tubes.freeze()
	return tubes
}

// forEachCombination calls onCombo with each k-element combination of 0..n-1, in lexicographic order.
//
// onCombo must not retain idx.
func forEachCombination(n, k int, onCombo func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		onCombo(idx)

		// Find the rightmost index that can still advance
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
