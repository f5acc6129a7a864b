// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sortcmd implements a command to sort
// the characters of the matrix
// of a SiteTree project.
package sortcmd

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/matrix"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: "sort <project-file>",
	Short: "sort the characters of a matrix by weight",
	Long: `
Command sort reads the character matrix of a SiteTree project and rewrites
the matrix file with the characters sorted by weight, from the most frequent
to the least frequent character. Characters with equal weight keep their
relative column order.

A weight sorted matrix is a precondition to build a perfect phylogeny.

The argument of the command is the name of the project file.
	`,
	Run: run,
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

	name := p.Path(project.Observations)
	if err := writeMatrix(m.Sort(), name); err != nil {
		return err
	}
	return nil
}

func writeMatrix(m *matrix.Matrix, name string) (err error) {
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

	if err := m.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
