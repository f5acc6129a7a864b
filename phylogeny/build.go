// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny

import (
	"errors"
	"fmt"

	"github.com/js-arias/sitetree/matrix"
)

// Errors returned when a matrix
// fails the preconditions of Build.
var (
	// ErrDuplicateTaxa indicates that two or more taxa
	// have identical character states.
	ErrDuplicateTaxa = errors.New("phylogeny: duplicate taxa")

	// ErrDuplicateChars indicates that two or more characters
	// have identical states over all taxa.
	ErrDuplicateChars = errors.New("phylogeny: duplicate characters")

	// ErrIncompatible indicates that at least one pair of characters
	// is incompatible,
	// so no perfect phylogeny exists for the matrix.
	ErrIncompatible = errors.New("phylogeny: incompatible characters")

	// ErrUnsorted indicates that the characters of the matrix
	// are not sorted by weight.
	ErrUnsorted = errors.New("phylogeny: unsorted matrix")
)

// Validate checks that a matrix
// fulfills the preconditions of Build:
// no duplicate taxa,
// all character pairs compatible,
// no duplicate characters,
// and characters sorted by weight.
// It returns the first violated precondition,
// wrapping one of the errors defined in this package.
func Validate(m *matrix.Matrix) error {
	if a, b, ok := m.HasDuplicateTaxa(); ok {
		return fmt.Errorf("%w: %q, %q", ErrDuplicateTaxa, a, b)
	}
	for c := 0; c < m.Cols(); c++ {
		for d := c + 1; d < m.Cols(); d++ {
			if !Compatible(m, c, d) {
				return fmt.Errorf("%w: %q, %q", ErrIncompatible, m.Char(c), m.Char(d))
			}
		}
	}
	if a, b, ok := m.HasDuplicateChars(); ok {
		return fmt.Errorf("%w: %q, %q", ErrDuplicateChars, a, b)
	}
	if !m.IsSorted() {
		return fmt.Errorf("%w: characters must be in non-increasing weight order", ErrUnsorted)
	}
	return nil
}

// Build builds the perfect phylogeny
// of a binary character matrix.
//
// The matrix must have no duplicate taxa,
// no duplicate characters,
// must be compatible,
// and its characters must be sorted by weight
// (see the Sort method of the matrix).
// If any precondition fails,
// it returns a nil tree
// and the corresponding error.
//
// Taxa are added in the row order of the matrix.
// For each taxon the builder walks from the root,
// following the characters of the taxon
// in column order,
// as long as the accumulated state vector
// is a node already in the tree;
// the remaining characters create new internal nodes,
// each one connected by an edge
// labeled with its character.
// Then the taxon is attached as a terminal
// with an unlabeled edge.
// Terminals are never indexed by state vector,
// so a later taxon with the same accumulated states
// will never use a terminal
// as an internal node.
func Build(name string, m *matrix.Matrix) (*Tree, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}

	t := &Tree{
		name:  name,
		chars: m.Chars(),
	}
	root := &node{
		id:     0,
		parent: -1,
		states: make([]bool, m.Cols()),
		char:   -1,
	}
	t.nodes = append(t.nodes, root)

	// the index of internal nodes by state vector,
	// local to this call
	index := make(map[string]int, m.Rows()*m.Cols())
	index[Label(root.states)] = root.id

	for r := 0; r < m.Rows(); r++ {
		cur := root.id
		states := make([]bool, m.Cols())

		// walk over nodes already in the tree
		c := 0
		for ; c < m.Cols(); c++ {
			if !m.At(r, c) {
				continue
			}
			states[c] = true
			id, ok := index[Label(states)]
			if !ok {
				states[c] = false
				break
			}
			cur = id
		}

		// add the characters not yet in the tree
		for ; c < m.Cols(); c++ {
			if !m.At(r, c) {
				continue
			}
			states[c] = true
			n := &node{
				id:     len(t.nodes),
				parent: cur,
				states: append([]bool(nil), states...),
				char:   c,
			}
			t.nodes = append(t.nodes, n)
			t.nodes[cur].children = append(t.nodes[cur].children, n.id)
			index[Label(n.states)] = n.id
			cur = n.id
		}

		// attach the taxon
		term := &node{
			id:     len(t.nodes),
			parent: cur,
			states: states,
			char:   -1,
			taxon:  m.Taxon(r),
		}
		t.nodes = append(t.nodes, term)
		t.nodes[cur].children = append(t.nodes[cur].children, term.id)
	}
	return t, nil
}
