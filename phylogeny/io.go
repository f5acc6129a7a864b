// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var headerFields = []string{
	"tree",
	"node",
	"parent",
	"character",
	"taxon",
	"states",
}

// ReadTSV reads a collection of perfect phylogenies
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - tree, the name of the tree
//   - node, the ID of the node
//   - parent, the ID of the parent of the node
//     (-1 on the root)
//   - character, the character labeling the edge
//     from the parent
//     (empty on the root and on terminals)
//   - taxon, the taxon labeling a terminal node
//     (empty on internal nodes)
//   - states, the state vector of the node
//     written as 0s and 1s in column order
//
// Parent nodes must be defined
// before their children.
//
// Here is an example file:
//
//	tree	node	parent	character	taxon	states
//	chain	0	-1			000
//	chain	1	0	char 1		100
//	chain	2	1		taxon 1	100
func ReadTSV(r io.Reader) (*Collection, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range headerFields {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	c := NewCollection()
	var t *Tree
	chars := make(map[string]map[int]string)
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "tree"
		name := strings.Join(strings.Fields(row[fields[f]]), " ")
		if name == "" {
			continue
		}
		if t == nil || t.name != name {
			nt := c.Tree(name)
			if nt == nil {
				nt = &Tree{name: name}
				if err := c.Add(nt); err != nil {
					return nil, fmt.Errorf("on row %d: %v", ln, err)
				}
				chars[name] = make(map[int]string)
			}
			t = nt
		}

		f = "node"
		id, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if id != len(t.nodes) {
			return nil, fmt.Errorf("on row %d: field %q: got ID %d, want %d", ln, f, id, len(t.nodes))
		}

		f = "parent"
		p, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if p >= id || (p < 0 && id != 0) {
			return nil, fmt.Errorf("on row %d: field %q: invalid parent %d for node %d", ln, f, p, id)
		}

		f = "states"
		sv := strings.TrimSpace(row[fields[f]])
		states := make([]bool, len(sv))
		for i := 0; i < len(sv); i++ {
			switch sv[i] {
			case '0':
			case '1':
				states[i] = true
			default:
				return nil, fmt.Errorf("on row %d: field %q: invalid states %q", ln, f, sv)
			}
		}
		if len(t.nodes) > 0 && len(states) != len(t.nodes[0].states) {
			return nil, fmt.Errorf("on row %d: field %q: got %d columns, want %d", ln, f, len(states), len(t.nodes[0].states))
		}

		f = "taxon"
		tax := strings.Join(strings.Fields(row[fields[f]]), " ")

		f = "character"
		char := strings.Join(strings.Fields(strings.ToLower(row[fields[f]])), " ")

		n := &node{
			id:     id,
			parent: p,
			states: states,
			char:   -1,
			taxon:  tax,
		}
		if p >= 0 {
			pn := t.nodes[p]
			diff, drop := stateDiff(pn.states, states)
			if drop {
				return nil, fmt.Errorf("on row %d: node %d: states must keep all states of the parent", ln, id)
			}
			if char != "" {
				if len(diff) != 1 {
					return nil, fmt.Errorf("on row %d: node %d: edge with character %q must add a single state", ln, id, char)
				}
				n.char = diff[0]
				chars[name][n.char] = char
			} else if len(diff) != 0 {
				return nil, fmt.Errorf("on row %d: node %d: unlabeled edge must not add states", ln, id)
			}
			pn.children = append(pn.children, id)
		} else {
			for _, s := range states {
				if s {
					return nil, fmt.Errorf("on row %d: node %d: root states must be all-zero", ln, id)
				}
			}
		}
		t.nodes = append(t.nodes, n)
	}

	for _, name := range c.Names() {
		t := c.Tree(name)
		if len(t.nodes) == 0 {
			continue
		}
		cols := len(t.nodes[0].states)
		t.chars = make([]string, cols)
		for i := 0; i < cols; i++ {
			char, ok := chars[name][i]
			if !ok {
				return nil, fmt.Errorf("tree %q: no character defined for column %d", name, i)
			}
			t.chars[i] = char
		}
	}
	return c, nil
}

// StateDiff returns the columns
// in which a state vector of a node
// adds states over the vector of its parent,
// and reports if the vector drops
// any state set in the parent.
func stateDiff(parent, states []bool) (add []int, drop bool) {
	for i, s := range states {
		if i < len(parent) && parent[i] == s {
			continue
		}
		if s {
			add = append(add, i)
			continue
		}
		drop = true
	}
	return add, drop
}

// TSV writes a collection of perfect phylogenies
// to a TSV file.
func (c *Collection) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(headerFields); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, name := range c.Names() {
		t := c.Tree(name)
		for _, id := range t.Nodes() {
			n := t.nodes[id]
			char := ""
			if n.char >= 0 {
				char = t.chars[n.char]
			}
			row := []string{
				name,
				strconv.Itoa(id),
				strconv.Itoa(n.parent),
				char,
				n.taxon,
				Label(n.states),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
