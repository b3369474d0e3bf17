package libtubes

import (
	"time"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Flip is a flip graph edge: moving to tubing To introduces the tube with ID Tube.
type Flip struct {
	To   int // index into FlipGraph.Tubings()
	Tube int // ID (in Graph.Tubes()) of the tube in To that is absent from the source tubing
}

// FlipGraph is the graph whose vertices are the maximal tubings of a Graph and whose edges join tubings that differ by one tube.
//
// A FlipGraph is read-only once built and is safe for concurrent searches.
type FlipGraph struct {
	G       *Graph
	tubings []gotubes.Tubing
	tubeIDs [][]int  // tubing index => IDs of its tubes
	flips   [][]Flip // tubing index => neighbors, in tubing order
}

// AreNeighbors returns true if exactly one tube of A is absent from B.
func AreNeighbors(A, B gotubes.Tubing) bool {
	count := 0
	for _, T := range A {
		if !B.Contains(T) {
			count++
		}
	}
	return count == 1
}

// NewTube returns the first tube of A that is absent from B.
func NewTube(A, B gotubes.Tubing) (gotubes.Tube, bool) {
	for _, T := range A {
		if !B.Contains(T) {
			return T, true
		}
	}
	return nil, false
}

// NewFlipGraph computes the tubings of G (if needed) and builds the flip graph over them.
func NewFlipGraph(G *Graph) (*FlipGraph, error) {
	if G == nil {
		return nil, gotubes.ErrNilGraph
	}
	startTime := time.Now()

	tubes := G.Tubes()
	tubings := G.Tubings()
	fg := &FlipGraph{
		G:       G,
		tubings: tubings,
		tubeIDs: make([][]int, len(tubings)),
		flips:   make([][]Flip, len(tubings)),
	}

	for i, X := range tubings {
		ids := make([]int, len(X))
		for j, T := range X {
			id, found := tubes.IDOf(T)
			if !found {
				return nil, errors.Wrapf(gotubes.ErrBrokenFlipGraph, "tubing %d holds unknown tube %v", i, T)
			}
			ids[j] = id
		}
		fg.tubeIDs[i] = ids
	}

	for i, v := range tubings {
		for j, w := range tubings {
			if !AreNeighbors(v, w) {
				continue
			}
			T, _ := NewTube(w, v)
			tubeID, found := tubes.IDOf(T)
			if !found {
				return nil, errors.Wrapf(gotubes.ErrBrokenFlipGraph, "flip %d->%d introduces unknown tube %v", i, j, T)
			}
			fg.flips[i] = append(fg.flips[i], Flip{
				To:   j,
				Tube: tubeID,
			})
		}
	}

	klog.V(2).Infof("flip graph for %v: %d vertices, built in %v", G.edges, len(tubings), time.Since(startTime))
	return fg, nil
}

// VertexCount returns the number of tubings (vertices) in this flip graph.
func (fg *FlipGraph) VertexCount() int {
	return len(fg.tubings)
}

// Tubings returns the vertices of this flip graph.  The caller must not modify it.
func (fg *FlipGraph) Tubings() []gotubes.Tubing {
	return fg.tubings
}

// Tubing returns the tubing at the given vertex index.
func (fg *FlipGraph) Tubing(vi int) gotubes.Tubing {
	return fg.tubings[vi]
}

// Flips returns the neighbors of vertex vi.  The caller must not modify it.
func (fg *FlipGraph) Flips(vi int) []Flip {
	return fg.flips[vi]
}

// EdgeCount returns the number of undirected edges in this flip graph.
func (fg *FlipGraph) EdgeCount() int {
	total := 0
	for _, flips := range fg.flips {
		total += len(flips)
	}
	return total / 2
}
