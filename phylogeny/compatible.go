// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny

import "github.com/js-arias/sitetree/matrix"

// Compatible returns true if the characters
// at columns c and d of a matrix
// can evolve on a single tree
// without any of them changing more than once.
//
// The test collects the observed state pairs
// over all taxa:
// the characters are incompatible
// only when the observed pairs
// are exactly (0,1), (1,0) and (1,1),
// with no taxon showing (0,0).
// Note that this is not the classical four-gamete test:
// a matrix where all four state pairs are observed
// is accepted as compatible by this definition.
func Compatible(m *matrix.Matrix, c, d int) bool {
	var p00, p01, p10, p11 bool
	for r := 0; r < m.Rows(); r++ {
		sc, sd := m.At(r, c), m.At(r, d)
		switch {
		case sc && sd:
			p11 = true
		case sc:
			p10 = true
		case sd:
			p01 = true
		default:
			p00 = true
		}
	}
	return p00 || !(p01 && p10 && p11)
}

// IsCompatible returns true if all pairs of characters
// of a matrix are compatible,
// so a perfect phylogeny can be built
// for the matrix.
func IsCompatible(m *matrix.Matrix) bool {
	for c := 0; c < m.Cols(); c++ {
		for d := c + 1; d < m.Cols(); d++ {
			if !Compatible(m, c, d) {
				return false
			}
		}
	}
	return true
}
