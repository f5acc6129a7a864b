// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny_test

import (
	"testing"

	"github.com/js-arias/sitetree/phylogeny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeTree(t *testing.T) {
	tree, err := phylogeny.Build("chain", newMatrix([][]int{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
	}))
	require.NoError(t, err)

	tt, err := tree.TimeTree(0)
	require.NoError(t, err)
	require.Equal(t, "chain", tt.Name())

	assert.ElementsMatch(t, tree.Terms(), tt.Terms())
	assert.Equal(t, tree.Len(), len(tt.Nodes()))

	// the deepest terminal of the chain
	// is four edges away from the root
	assert.Equal(t, int64(4*phylogeny.MillionYears), tt.Age(tt.Root()))
}

func TestTimeTreeSharedPrefix(t *testing.T) {
	tree, err := phylogeny.Build("shared", newMatrix([][]int{
		{1, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	require.NoError(t, err)

	brLen := int64(1_000)
	tt, err := tree.TimeTree(brLen)
	require.NoError(t, err)

	assert.ElementsMatch(t, tree.Terms(), tt.Terms())
	assert.Equal(t, tree.Len(), len(tt.Nodes()))

	// the deepest terminal hangs from the node 1111,
	// five edges away from the root
	assert.Equal(t, 5*brLen, tt.Age(tt.Root()))
}
