// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package check implements a command to report
// incompatible character pairs
// in the matrix of a SiteTree project.
package check

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/phylogeny"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: "check <project-file>",
	Short: "check the compatibility of a character matrix",
	Long: `
Command check reads the character matrix of a SiteTree project and reports
every pair of incompatible characters in the standard output.

Two characters are incompatible when the observed state pairs over all the
taxa are exactly (0,1), (1,0), and (1,1). A matrix with one or more
incompatible pairs has no perfect phylogeny, and the command will finish with
an error.

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

	pairs := 0
	for i := 0; i < m.Cols(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			if phylogeny.Compatible(m, i, j) {
				continue
			}
			pairs++
			fmt.Fprintf(c.Stdout(), "%s\t%s\n", m.Char(i), m.Char(j))
		}
	}
	if pairs > 0 {
		return fmt.Errorf("matrix %q: %d incompatible character pairs", p.Path(project.Observations), pairs)
	}
	return nil
}
