// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package phylogeny implements the construction
// of perfect phylogenies
// from binary character matrices.
//
// In a perfect phylogeny
// every taxon labels a single leaf,
// every character labels a single edge,
// and the characters on the path
// from the root to the leaf of a taxon
// are exactly the characters of the taxon.
package phylogeny

import (
	"slices"
	"strings"
)

// A Tree is a rooted perfect phylogeny.
//
// Nodes are identified by IDs,
// with the root node always at ID 0.
// Each node stores its state vector,
// the accumulated set of derived characters
// on the path from the root to the node.
// Terminal nodes are labeled with a taxon name
// and are attached by an unlabeled edge;
// any other edge is labeled
// by a single character.
type Tree struct {
	name  string
	chars []string
	nodes []*node
}

type node struct {
	id       int
	parent   int
	children []int

	// states is the accumulated state vector of the node;
	// on a terminal it is the full character set
	// of its taxon.
	states []bool

	// char is the column of the character
	// that labels the edge from the parent,
	// or -1 on the root
	// and on terminals.
	char int

	// taxon is the name of the taxon on a terminal,
	// or empty on an internal node.
	taxon string
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Chars returns the characters of the tree
// in the column order used to build it.
func (t *Tree) Chars() []string {
	return slices.Clone(t.chars)
}

// Len returns the number of nodes of the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns the IDs of the nodes of the tree.
// The root is always first
// and any other node always appears
// after its parent.
func (t *Tree) Nodes() []int {
	ids := make([]int, len(t.nodes))
	for i := range t.nodes {
		ids[i] = i
	}
	return ids
}

// Root returns the ID of the root node.
func (t *Tree) Root() int {
	return 0
}

// Parent returns the ID of the parent
// of the indicated node.
// It returns -1 on the root
// or an invalid node.
func (t *Tree) Parent(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return -1
	}
	return t.nodes[id].parent
}

// Children returns the IDs of the children
// of the indicated node.
func (t *Tree) Children(id int) []int {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return slices.Clone(t.nodes[id].children)
}

// IsRoot returns true if the indicated node
// is the root of the tree.
func (t *Tree) IsRoot(id int) bool {
	return id == 0
}

// IsTerm returns true if the indicated node
// is a terminal
// (i.e., a leaf labeled with a taxon).
func (t *Tree) IsTerm(id int) bool {
	if id < 0 || id >= len(t.nodes) {
		return false
	}
	return t.nodes[id].taxon != ""
}

// Taxon returns the taxon that labels
// the indicated node.
// It returns an empty string
// on an internal node.
func (t *Tree) Taxon(id int) string {
	if id < 0 || id >= len(t.nodes) {
		return ""
	}
	return t.nodes[id].taxon
}

// TaxNode returns the ID of the terminal node
// labeled by the indicated taxon.
// It returns -1 if the taxon is not in the tree.
func (t *Tree) TaxNode(taxon string) int {
	for _, n := range t.nodes {
		if n.taxon != "" && n.taxon == taxon {
			return n.id
		}
	}
	return -1
}

// Terms returns the name of all terminals
// of the tree,
// sorted alphabetically.
func (t *Tree) Terms() []string {
	var terms []string
	for _, n := range t.nodes {
		if n.taxon != "" {
			terms = append(terms, n.taxon)
		}
	}
	slices.Sort(terms)
	return terms
}

// Character returns the name of the character
// that labels the edge
// between the indicated node
// and its parent.
// It returns false on the root
// and on terminals,
// whose edges are unlabeled.
func (t *Tree) Character(id int) (string, bool) {
	if id < 0 || id >= len(t.nodes) {
		return "", false
	}
	n := t.nodes[id]
	if n.char < 0 {
		return "", false
	}
	return t.chars[n.char], true
}

// States returns the state vector
// of the indicated node.
func (t *Tree) States(id int) []bool {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	return slices.Clone(t.nodes[id].states)
}

// Label returns the display label
// of the indicated node,
// the state vector written as a string
// of 0s and 1s in column order.
func (t *Tree) Label(id int) string {
	if id < 0 || id >= len(t.nodes) {
		return ""
	}
	return Label(t.nodes[id].states)
}

// Label returns a state vector
// as a string of 0s and 1s.
func Label(states []bool) string {
	var sb strings.Builder
	for _, s := range states {
		if s {
			sb.WriteByte('1')
			continue
		}
		sb.WriteByte('0')
	}
	return sb.String()
}

// Depth returns the number of edges
// on the path from the root
// to the indicated node.
func (t *Tree) Depth(id int) int {
	if id < 0 || id >= len(t.nodes) {
		return 0
	}
	d := 0
	for p := t.nodes[id].parent; p >= 0; p = t.nodes[p].parent {
		d++
	}
	return d
}
