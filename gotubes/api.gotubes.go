package gotubes

import (
	"math"
	"slices"
	"strings"
)

// VtxID identifies a vertex of an input graph.  IDs are assigned by the input and need not be contiguous.
type VtxID uint32

// MaxVtxID is the largest vertex ID an input graph may use.
const MaxVtxID = math.MaxUint32

// Edge is an unordered pair of vertices.
type Edge [2]VtxID

// Normalized returns the edge with its lower vertex first.
func (e Edge) Normalized() Edge {
	if e[0] > e[1] {
		return Edge{e[1], e[0]}
	}
	return e
}

// Tube is a sorted, non-empty set of vertices that induces a connected subgraph.
//
// Since a Tube is kept sorted, two tubes with the same members are element-wise equal.
type Tube []VtxID

// Tubing is a set of pairwise compatible tubes, kept sorted by CompareTubes.
type Tubing []Tube

// Mode selects what the flip graph search is looking for.
type Mode byte

const (
	Mode_Paths  Mode = 1 // facet Hamiltonian path
	Mode_Cycles Mode = 2 // facet Hamiltonian cycle
)

// Outcome is the per-graph result of a search.
type Outcome byte

const (
	Outcome_Excluded Outcome = 0 // graph is disconnected and was not searched
	Outcome_NotFound Outcome = 1 // no witness within the trial budget
	Outcome_Found    Outcome = 2 // a witness walk was found
)

// SearchOpts specifies a randomized flip graph search.
type SearchOpts struct {
	Mode    Mode   // Mode_Paths or Mode_Cycles
	Tries   int    // number of independent trials (> 0)
	Workers int    // max concurrent trials (0 denotes GOMAXPROCS)
	Seed    uint64 // 0 denotes a random seed
}

// PrintOpts specifies what is printed for a search report.
type PrintOpts struct {
	Walk bool // If set, prints each tubing of a found witness
}

// GraphInfo summarizes the derived structures of a graph.
type GraphInfo struct {
	NumVerts   int
	NumEdges   int
	NumTubes   int
	NumTubings int
}

// ParseMode accepts the long and short spellings used on the command line.
func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "paths", "p":
		return Mode_Paths, nil
	case "cycles", "c":
		return Mode_Cycles, nil
	}
	return 0, ErrBadMode
}

func (mode Mode) String() string {
	switch mode {
	case Mode_Paths:
		return "paths"
	case Mode_Cycles:
		return "cycles"
	}
	return "unknown"
}

func (oc Outcome) String() string {
	switch oc {
	case Outcome_Excluded:
		return "excluded"
	case Outcome_NotFound:
		return "not_found"
	case Outcome_Found:
		return "found"
	}
	return "unknown"
}

// Validate checks that opts describes a runnable search.
func (opts *SearchOpts) Validate() error {
	if opts.Mode != Mode_Paths && opts.Mode != Mode_Cycles {
		return ErrBadMode
	}
	if opts.Tries < 1 {
		return ErrBadTries
	}
	if opts.Workers < 0 {
		return ErrBadConfig
	}
	return nil
}

// NewTube returns a sorted copy of the given vertices.
func NewTube(vtx ...VtxID) Tube {
	T := make(Tube, len(vtx))
	copy(T, vtx)
	slices.Sort(T)
	return T
}

// Contains returns true if v is a member of T.
func (T Tube) Contains(v VtxID) bool {
	_, found := slices.BinarySearch(T, v)
	return found
}

// IsSubsetOf returns true if every member of T is a member of B.
func (T Tube) IsSubsetOf(B Tube) bool {
	if len(T) > len(B) {
		return false
	}
	j := 0
	for _, v := range T {
		for j < len(B) && B[j] < v {
			j++
		}
		if j == len(B) || B[j] != v {
			return false
		}
		j++
	}
	return true
}

// IsDisjoint returns true if T and B share no vertex.
func (T Tube) IsDisjoint(B Tube) bool {
	i, j := 0, 0
	for i < len(T) && j < len(B) {
		switch {
		case T[i] < B[j]:
			i++
		case T[i] > B[j]:
			j++
		default:
			return false
		}
	}
	return true
}

// Equals returns true if T and B have the same members.
func (T Tube) Equals(B Tube) bool {
	return slices.Equal(T, B)
}

// CompareTubes orders tubes lexicographically, where a proper prefix sorts first.
func CompareTubes(A, B Tube) int {
	return slices.Compare(A, B)
}

// CompareTubings orders tubings lexicographically over their (sorted) tubes.
func CompareTubings(A, B Tubing) int {
	return slices.CompareFunc(A, B, CompareTubes)
}

// Canonize sorts the tubes of X in place and returns X.
func (X Tubing) Canonize() Tubing {
	slices.SortFunc(X, CompareTubes)
	return X
}

// Contains returns true if X has a tube equal to T.
func (X Tubing) Contains(T Tube) bool {
	for _, Ti := range X {
		if Ti.Equals(T) {
			return true
		}
	}
	return false
}

// Clone returns a copy of X that shares its (immutable) tubes.
func (X Tubing) Clone() Tubing {
	return slices.Clone(X)
}
