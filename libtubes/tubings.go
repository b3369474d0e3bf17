package libtubes

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/fine-structures/fliptubes/gotubes"
)

// tubingLevel is a set of canonic tubings that all have the same number of tubes.
type tubingLevel struct {
	tree *redblacktree.Tree // Tubing => nil
}

func newTubingLevel() tubingLevel {
	return tubingLevel{
		tree: redblacktree.NewWith(func(A, B interface{}) int {
			return gotubes.CompareTubings(A.(gotubes.Tubing), B.(gotubes.Tubing))
		}),
	}
}

// tryAdd adds the canonic tubing X unless an equal tubing is already present.
func (level tubingLevel) tryAdd(X gotubes.Tubing) bool {
	if _, found := level.tree.Get(X); found {
		return false
	}
	level.tree.Put(X, nil)
	return true
}

func (level tubingLevel) Len() int {
	return level.tree.Size()
}

// Tubings returns the tubings of this level in ascending order.
func (level tubingLevel) Tubings() []gotubes.Tubing {
	out := make([]gotubes.Tubing, 0, level.tree.Size())
	it := level.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(gotubes.Tubing))
	}
	return out
}

// findTubings grows tubings one tube at a time, starting from a singleton tubing per vertex.
//
// Level k holds every tubing with k tubes that extends a level k-1 tubing by a compatible tube.
// Growth stops at Nv-1 tubes (the size of a maximal tubing since the full vertex set is not a tube).
// Only the current and next level are ever held in memory.
func (X *Graph) findTubings() []gotubes.Tubing {

	// A lone vertex has no proper subsets to form tubes from
	if len(X.vtx) < 2 {
		return nil
	}

	level := newTubingLevel()
	for _, v := range X.vtx {
		level.tryAdd(gotubes.Tubing{gotubes.Tube{v}})
	}

	for k := 2; k < len(X.vtx); k++ {
		next := newTubingLevel()
		it := level.tree.Iterator()
		for it.Next() {
			partial := it.Key().(gotubes.Tubing)
			for _, ext := range CompatibleWith(partial, X) {
				next.tryAdd(ext)
			}
		}
		level = next
	}

	return level.Tubings()
}
