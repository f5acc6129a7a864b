// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny_test

import (
	"fmt"
	"testing"

	"github.com/js-arias/sitetree/matrix"
	"github.com/js-arias/sitetree/phylogeny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatible(t *testing.T) {
	tests := map[string]struct {
		rows [][]int
		want bool
	}{
		"nested": {
			rows: [][]int{{1, 1}, {1, 0}, {0, 0}},
			want: true,
		},
		"disjoint": {
			rows: [][]int{{1, 0}, {0, 1}, {0, 0}},
			want: true,
		},
		"exact three pairs": {
			rows: [][]int{{0, 1}, {1, 0}, {1, 1}},
			want: false,
		},
		// The test only rejects the exact three pair set:
		// with all four state pairs observed
		// the characters are accepted,
		// even if the classical four gamete test
		// would reject them.
		"all four pairs": {
			rows: [][]int{{0, 1}, {1, 0}, {1, 1}, {0, 0}},
			want: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m := newMatrix(test.rows)
			assert.Equal(t, test.want, phylogeny.Compatible(m, 0, 1))
		})
	}
}

func TestIsCompatible(t *testing.T) {
	chain := newMatrix([][]int{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
	})
	assert.True(t, phylogeny.IsCompatible(chain))

	bad := newMatrix([][]int{
		{0, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 0, 0, 0},
	})
	assert.False(t, phylogeny.IsCompatible(bad))

	// compatibility is a per pair of columns property,
	// so it is invariant under column sorting
	assert.True(t, phylogeny.IsCompatible(chain.Sort()))
	assert.False(t, phylogeny.IsCompatible(bad.Sort()))
}

// NewMatrix creates a matrix from explicit binary rows.
// Taxa are named "taxon 1", "taxon 2", etc.,
// in row order,
// and characters "char 1", "char 2", etc.,
// in column order.
func newMatrix(rows [][]int) *matrix.Matrix {
	m := matrix.New()
	for i, r := range rows {
		tax := fmt.Sprintf("taxon %d", i+1)
		for j, s := range r {
			m.Set(tax, fmt.Sprintf("char %d", j+1), s == 1)
		}
	}
	return m
}

func requireMatrix(t testing.TB, rows [][]int) *matrix.Matrix {
	t.Helper()

	m := newMatrix(rows)
	require.Equal(t, len(rows), m.Rows())
	if len(rows) > 0 {
		require.Equal(t, len(rows[0]), m.Cols())
	}
	return m
}
