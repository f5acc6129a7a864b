// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny

import (
	"fmt"

	"github.com/js-arias/timetree"
)

// MillionYears is the default branch length
// for an edge of an exported tree.
const MillionYears = 1_000_000

// TimeTree exports a perfect phylogeny
// as a time calibrated tree,
// assigning the given length,
// in years,
// to every edge of the tree.
// If the length is zero or negative,
// a million years will be used.
//
// There is no real time in a perfect phylogeny,
// so the exported ages only preserve
// the topology of the tree:
// the root age is the length of the longest path,
// and each terminal ends as many edge lengths
// before the present
// as its distance from the deepest terminal.
func (t *Tree) TimeTree(brLen int64) (*timetree.Tree, error) {
	if brLen <= 0 {
		brLen = MillionYears
	}

	max := 0
	for _, id := range t.Nodes() {
		if d := t.Depth(id); d > max {
			max = d
		}
	}

	tt := timetree.New(t.name, int64(max)*brLen)

	// the root of the exported tree
	// is the root of the phylogeny
	ids := make(map[int]int, len(t.nodes))
	ids[0] = tt.Root()

	for _, id := range t.Nodes() {
		if id == 0 {
			continue
		}
		n := t.nodes[id]
		x, err := tt.Add(ids[n.parent], brLen, n.taxon)
		if err != nil {
			return nil, fmt.Errorf("phylogeny: when exporting tree %q: node %d: %v", t.name, id, err)
		}
		ids[id] = x
	}
	return tt, nil
}
