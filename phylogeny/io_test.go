// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/js-arias/sitetree/phylogeny"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionTSV(t *testing.T) {
	c := phylogeny.NewCollection()

	chain, err := phylogeny.Build("chain", newMatrix([][]int{
		{1, 0, 0},
		{1, 1, 0},
		{1, 1, 1},
	}))
	require.NoError(t, err)
	require.NoError(t, c.Add(chain))

	shared, err := phylogeny.Build("shared", newMatrix([][]int{
		{1, 1, 1, 0},
		{1, 1, 1, 1},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
	}))
	require.NoError(t, err)
	require.NoError(t, c.Add(shared))

	var w bytes.Buffer
	require.NoError(t, c.TSV(&w))
	t.Logf("output:\n%s\n", w.String())

	nc, err := phylogeny.ReadTSV(strings.NewReader(w.String()))
	require.NoError(t, err)

	require.Equal(t, c.Names(), nc.Names())
	for _, name := range c.Names() {
		ot := c.Tree(name)
		nt := nc.Tree(name)
		require.NotNil(t, nt)
		require.Equal(t, ot.Len(), nt.Len(), "tree %q", name)

		assert.Equal(t, ot.Chars(), nt.Chars(), "tree %q", name)
		assert.Equal(t, ot.Terms(), nt.Terms(), "tree %q", name)
		for _, id := range ot.Nodes() {
			assert.Equal(t, ot.Parent(id), nt.Parent(id), "tree %q: node %d", name, id)
			assert.Equal(t, ot.Children(id), nt.Children(id), "tree %q: node %d", name, id)
			assert.Equal(t, ot.Label(id), nt.Label(id), "tree %q: node %d", name, id)
			assert.Equal(t, ot.Taxon(id), nt.Taxon(id), "tree %q: node %d", name, id)

			oc, ook := ot.Character(id)
			gc, gok := nt.Character(id)
			assert.Equal(t, ook, gok, "tree %q: node %d", name, id)
			assert.Equal(t, oc, gc, "tree %q: node %d", name, id)
		}
	}
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"bad header": "tree\tnode\tparent\tcharacter\ttaxon\n" +
			"t\t0\t-1\t\t\n",
		"bad states": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\tXX\n",
		"bad parent": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t00\n" +
			"t\t1\t8\tchar 1\t\t10\n",
		"multiple states on an edge": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t00\n" +
			"t\t1\t0\tchar 1\t\t11\n",
		"states on a terminal edge": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t00\n" +
			"t\t1\t0\t\ttaxon 1\t10\n",
		"dropped parent state": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t00\n" +
			"t\t1\t0\tchar 1\t\t10\n" +
			"t\t2\t1\tchar 2\t\t01\n",
		"root with states": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t10\n",
		"unlabeled column": "tree\tnode\tparent\tcharacter\ttaxon\tstates\n" +
			"t\t0\t-1\t\t\t00\n" +
			"t\t1\t0\tchar 1\t\t10\n" +
			"t\t2\t1\t\ttaxon 1\t10\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := phylogeny.ReadTSV(strings.NewReader(data))
			assert.Error(t, err)
		})
	}
}
