// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package draw implements a command to draw
// trees in a SiteTree project as SVG files.
package draw

import (
	"bufio"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: `draw [--tree <tree>]
	[--step <value>] [--nolabels]
	[-o|--output <out-prefix>]
	<project-file>`,
	Short: "draw project trees as SVG files",
	Long: `
Command draw reads a SiteTree project and draws the trees into a SVG-encoded
file.

Each labeled edge is drawn with the name of its character, each internal node
with its state vector, and each terminal with the name of its taxon.

The argument of the command is the name of the project file.

By default, 50 pixel units will be used per edge; use the flag --step to
define a different value.

By default, state vectors will be drawn on internal nodes. If the flag
--nolabels is given, then it will draw the tree without state vectors.

By default, all trees in the project will be drawn. If the flag --tree is
set, only the indicated tree will be printed.

By default, the names of the trees will be used as the output file names. Use
the flag -o, or --output, to define a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var noLabels bool
var stepX int
var treeName string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&noLabels, "nolabels", false, "")
	c.Flags().IntVar(&stepX, "step", 50, "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
	c.Flags().StringVar(&treeName, "tree", "", "")
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

	ls := pc.Names()
	if treeName != "" {
		ls = []string{treeName}
	}
	for _, tn := range ls {
		t := pc.Tree(tn)
		if t == nil {
			continue
		}
		if err := writeSVG(tn, copyTree(t, stepX, noLabels)); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(name string, t svgTree) (err error) {
	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.svg", outPrefix, name)
	} else {
		name += ".svg"
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	bw := bufio.NewWriter(f)
	if err := t.draw(bw); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
