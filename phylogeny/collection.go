// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package phylogeny

import (
	"fmt"
	"slices"
)

// A Collection is a set of phylogenetic trees
// indexed by their names.
type Collection struct {
	trees map[string]*Tree
}

// NewCollection creates a new empty collection.
func NewCollection() *Collection {
	return &Collection{
		trees: make(map[string]*Tree),
	}
}

// Add adds a tree to the collection.
// It returns an error
// if the collection already has a tree
// with the name of the added tree.
func (c *Collection) Add(t *Tree) error {
	name := t.Name()
	if name == "" {
		return fmt.Errorf("phylogeny: collection: tree without name")
	}
	if _, dup := c.trees[name]; dup {
		return fmt.Errorf("phylogeny: collection: tree %q already in collection", name)
	}
	c.trees[name] = t
	return nil
}

// Names returns the names of the trees in the collection,
// sorted alphabetically.
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.trees))
	for name := range c.trees {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Tree returns the tree with a given name.
func (c *Collection) Tree(name string) *Tree {
	return c.trees[name]
}
