// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package export implements a command to export
// the phylogenies of a SiteTree project
// as time calibrated trees.
package export

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/phylogeny"
	"github.com/js-arias/sitetree/project"
	"github.com/js-arias/timetree"
)

var Command = &command.Command{
	Usage: `export [-f|--file <tree-file>]
	[--len <value>] <project-file>`,
	Short: "export phylogenies as time calibrated trees",
	Long: `
Command export reads the trees from a SiteTree project and writes them as
time calibrated trees, in the TSV format used by the timetree package and
tools like PhyGeo.

There is no real time in a perfect phylogeny, so the exported branch lengths
only preserve the topology of the tree: every edge, including the unlabeled
terminal edges, is exported with the same length. By default each edge is a
million years long; use the flag --len to set a different length, in years.

The argument of the command is the name of the project file.

By default the trees will be stored in the file 'trees.tab'. A different file
name can be defined using the flag --file, or -f.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeFile string
var brLen int64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeFile, "file", "", "")
	c.Flags().StringVar(&treeFile, "f", "", "")
	c.Flags().Int64Var(&brLen, "len", phylogeny.MillionYears, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	pc, err := p.Phylogeny()
	if err != nil {
		return err
	}

	coll := timetree.NewCollection()
	for _, tn := range pc.Names() {
		t := pc.Tree(tn)
		tt, err := t.TimeTree(brLen)
		if err != nil {
			return err
		}
		if err := coll.Add(tt); err != nil {
			return fmt.Errorf("when exporting tree %q: %v", tn, err)
		}
	}

	if treeFile == "" {
		treeFile = p.Path(project.Trees)
		if treeFile == "" {
			treeFile = "trees.tab"
		}
	}

	if err := writeTrees(coll); err != nil {
		return err
	}
	p.Add(project.Trees, treeFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func writeTrees(coll *timetree.Collection) (err error) {
	f, err := os.Create(treeFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := coll.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", treeFile, err)
	}
	return nil
}
