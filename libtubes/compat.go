package libtubes

import "github.com/fine-structures/fliptubes/gotubes"

// AreCompatible returns true if tubes A and B may appear together in a tubing of X.
//
// Nested tubes are compatible, as are disjoint tubes with no edge of X between them.
// Equal tubes and partially overlapping tubes are not.
func AreCompatible(A, B gotubes.Tube, X *Graph) bool {
	if A.Equals(B) {
		return false
	}
	if A.IsSubsetOf(B) || B.IsSubsetOf(A) {
		return true
	}
	if !A.IsDisjoint(B) {
		return false
	}
	for _, e := range X.edges {
		if (A.Contains(e[0]) && B.Contains(e[1])) || (A.Contains(e[1]) && B.Contains(e[0])) {
			return false
		}
	}
	return true
}

// IsCompatibleWith returns true if T is compatible with every tube in partial.
func IsCompatibleWith(T gotubes.Tube, partial gotubes.Tubing, X *Graph) bool {
	for _, Ti := range partial {
		if !AreCompatible(T, Ti, X) {
			return false
		}
	}
	return true
}

// CompatibleWith returns each extension of partial by one tube of X compatible with all of partial's tubes.
//
// Each returned tubing is canonized and owns its tube slice (tubes themselves are shared).
func CompatibleWith(partial gotubes.Tubing, X *Graph) []gotubes.Tubing {
	var out []gotubes.Tubing
	for _, T := range X.Tubes().Tubes() {
		if IsCompatibleWith(T, partial, X) {
			ext := make(gotubes.Tubing, len(partial), len(partial)+1)
			copy(ext, partial)
			ext = append(ext, T)
			out = append(out, ext.Canonize())
		}
	}
	return out
}

// IsTubing returns true if every pair of tubes in X is compatible in G.
func IsTubing(X gotubes.Tubing, G *Graph) bool {
	for i := range X {
		for j := i + 1; j < len(X); j++ {
			if !AreCompatible(X[i], X[j], G) {
				return false
			}
		}
	}
	return true
}
