// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/sitetree/matrix"
	"github.com/js-arias/sitetree/phylogeny"
)

// Observations reads the binary character matrix
// as defined in a project.
func (p *Project) Observations() (*matrix.Matrix, error) {
	name := p.Path(Observations)
	if name == "" {
		return nil, fmt.Errorf("observations not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := matrix.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return m, nil
}

// Phylogeny reads the collection of built trees
// as defined in a project.
func (p *Project) Phylogeny() (*phylogeny.Collection, error) {
	name := p.Path(Phylogeny)
	if name == "" {
		return nil, fmt.Errorf("phylogeny not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := phylogeny.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return c, nil
}
