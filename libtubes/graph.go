package libtubes

import (
	"sync"

	"github.com/fine-structures/fliptubes/gotubes"
	"github.com/plan-systems/klog"
)

// Graph is a finite undirected graph along with its derived tubes and tubings.
//
// A Graph's vertices and edges are fixed at construction.  Tubes and tubings are computed at most once
// (on first request) and are read-only afterwards, so a Graph may be shared across goroutines.
type Graph struct {
	SeqID int // one-based position in the input this graph was read from (0 if not read from input)

	vtx   []gotubes.VtxID
	edges []gotubes.Edge

	tubesOnce   sync.Once
	tubes       *TubeSet
	tubingsOnce sync.Once
	tubings     []gotubes.Tubing
}

// NewGraph returns a Graph whose vertices are the edge endpoints, in first-seen order.
func NewGraph(edges []gotubes.Edge) *Graph {
	var vtx []gotubes.VtxID
	seen := make(map[gotubes.VtxID]struct{}, 2*len(edges))
	for _, e := range edges {
		for _, v := range e {
			if _, dupe := seen[v]; !dupe {
				seen[v] = struct{}{}
				vtx = append(vtx, v)
			}
		}
	}
	return NewGraphFromVertices(vtx, edges)
}

// NewGraphFromVertices returns a Graph with the given vertices and edges.
// The caller asserts each edge endpoint is in vtx.
func NewGraphFromVertices(vtx []gotubes.VtxID, edges []gotubes.Edge) *Graph {
	X := &Graph{
		vtx:   make([]gotubes.VtxID, len(vtx)),
		edges: make([]gotubes.Edge, len(edges)),
	}
	copy(X.vtx, vtx)
	copy(X.edges, edges)
	return X
}

// Vertices returns the vertices of X in their construction order.  The caller must not modify it.
func (X *Graph) Vertices() []gotubes.VtxID {
	return X.vtx
}

// Edges returns the edges of X in their construction order.  The caller must not modify it.
func (X *Graph) Edges() []gotubes.Edge {
	return X.edges
}

func (X *Graph) VertexCount() int {
	return len(X.vtx)
}

// IsConnected returns true if every vertex in subset is reachable from subset[0] using only edges with both ends in subset.
//
// An empty subset is not connected and a single vertex always is.
func (X *Graph) IsConnected(subset []gotubes.VtxID) bool {
	if len(subset) == 0 {
		return false
	}
	if len(subset) == 1 {
		return true
	}

	inSubset := make(map[gotubes.VtxID]bool, len(subset))
	for _, v := range subset {
		inSubset[v] = true
	}

	found := make(map[gotubes.VtxID]bool, len(subset))
	found[subset[0]] = true
	active := []gotubes.VtxID{subset[0]}
	var next []gotubes.VtxID

	for len(active) > 0 {
		next = next[:0]
		for _, v := range active {
			for _, e := range X.edges {
				var w gotubes.VtxID
				switch v {
				case e[0]:
					w = e[1]
				case e[1]:
					w = e[0]
				default:
					continue
				}
				if inSubset[w] && !found[w] {
					found[w] = true
					next = append(next, w)
				}
			}
		}
		active, next = next, active
	}

	for _, v := range subset {
		if !found[v] {
			return false
		}
	}
	return true
}

// IsGraphConnected returns true if X's full vertex set is connected.
func (X *Graph) IsGraphConnected() bool {
	return X.IsConnected(X.vtx)
}

// Tubes returns all tubes of X, computing them on first call.
//
// Every call returns the same *TubeSet.
func (X *Graph) Tubes() *TubeSet {
	X.tubesOnce.Do(func() {
		X.tubes = X.findTubes()
		klog.V(2).Infof("graph %v: %d tubes", X.edges, X.tubes.Len())
	})
	return X.tubes
}

// Tubings returns the maximal tubings of X, computing tubes and tubings on first call.
//
// Every call returns the same slice, sorted by gotubes.CompareTubings.  The caller must not modify it.
func (X *Graph) Tubings() []gotubes.Tubing {
	X.tubingsOnce.Do(func() {
		X.tubings = X.findTubings()
		klog.V(2).Infof("graph %v: %d tubings", X.edges, len(X.tubings))
	})
	return X.tubings
}

// Compute computes the tubes and tubings of X if they have not been computed yet.
//
// Call Compute before handing X to concurrent readers that only need a frozen graph.
func (X *Graph) Compute() {
	X.Tubes()
	X.Tubings()
}

// GetInfo returns counts of X and its derived structures, computing them if needed.
func (X *Graph) GetInfo() gotubes.GraphInfo {
	return gotubes.GraphInfo{
		NumVerts:   len(X.vtx),
		NumEdges:   len(X.edges),
		NumTubes:   X.Tubes().Len(),
		NumTubings: len(X.Tubings()),
	}
}
