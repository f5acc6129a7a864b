// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the taxa and characters
// in the matrix of a SiteTree project.
package list

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: "list [--chars] <project-file>",
	Short: "print a list of taxa or characters in a project",
	Long: `
Command list reads the character matrix of a SiteTree project and print the
taxon names, in matrix row order, in the standard output.

If the flag --chars is set, the characters will be printed instead, in matrix
column order, with the weight of each character (the number of taxa with the
derived state).

The argument of the command is the name of the project file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var listChars bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&listChars, "chars", false, "")
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

	if listChars {
		for i, char := range m.Chars() {
			fmt.Fprintf(c.Stdout(), "%s\t%d\n", char, m.Weight(i))
		}
		return nil
	}

	for _, tax := range m.Taxa() {
		fmt.Fprintf(c.Stdout(), "%s\n", tax)
	}
	return nil
}
