// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package build implements a command to build
// the perfect phylogeny
// of the matrix of a SiteTree project.
package build

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/phylogeny"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: `build [-f|--file <phylogeny-file>]
	[--name <tree-name>] <project-file>`,
	Short: "build the perfect phylogeny of a matrix",
	Long: `
Command build reads the character matrix of a SiteTree project, sorts its
characters by weight, and builds the perfect phylogeny of the matrix, adding
each taxon in matrix row order.

If the matrix has duplicate taxa, duplicate characters, or an incompatible
pair of characters, there is no perfect phylogeny and the command will finish
with an error, leaving the project unmodified.

The argument of the command is the name of the project file.

By default the tree will be named "tree"; use the flag --name to set a
different name. The name must be different from any tree already in the
project.

By default the tree will be stored in the phylogeny file currently defined
for the project. If the project does not have a phylogeny file, a new one
will be created with the name 'phylogeny.tab'. A different file name can be
defined using the flag --file, or -f (previously built trees will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var phyFile string
var treeName string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&phyFile, "file", "", "")
	c.Flags().StringVar(&phyFile, "f", "", "")
	c.Flags().StringVar(&treeName, "name", "tree", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	m, err := p.Observations()
	if err != nil {
		return err
	}

	t, err := phylogeny.Build(treeName, m.Sort())
	if err != nil {
		return err
	}

	var pc *phylogeny.Collection
	if pf := p.Path(project.Phylogeny); pf != "" {
		pc, err = readCollection(pf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", pf, err)
		}
	}
	if pc == nil {
		pc = phylogeny.NewCollection()
	}
	if err := pc.Add(t); err != nil {
		return err
	}

	if phyFile == "" {
		phyFile = p.Path(project.Phylogeny)
		if phyFile == "" {
			phyFile = "phylogeny.tab"
		}
	}

	if err := writeCollection(pc); err != nil {
		return err
	}
	p.Add(project.Phylogeny, phyFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func readCollection(name string) (*phylogeny.Collection, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pc, err := phylogeny.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return pc, nil
}

func writeCollection(pc *phylogeny.Collection) (err error) {
	f, err := os.Create(phyFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := pc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", phyFile, err)
	}
	return nil
}
