// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// character state observations
// to a SiteTree project.
package add

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/matrix"
	"github.com/js-arias/sitetree/project"
)

var Command = &command.Command{
	Usage: `add [-f|--file <matrix-file>]
	<project-file> [<observations-file>...]`,
	Short: "add character observations to a SiteTree project",
	Long: `
Command add reads binary character state observations from one or more TSV
files, and add the observations to a SiteTree project.

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more observation files can be given as arguments. If no file is given
the observations will be read from the standard input. The observation files
must be TSV files with the fields "taxon", "character", and "state", the
state given as "0" or "1".

By default the observations will be stored in the matrix file currently
defined for the project. If the project does not have a matrix file, a new
one will be created with the name 'observations.tab'. A different matrix file
name can be defined using the flag --file, or -f. If this flag is used, and
there is a matrix file already defined, then a new file with that name will
be created, and used as the matrix file for the project (previously defined
observations will be kept).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var matrixFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&matrixFile, "file", "", "")
	c.Flags().StringVar(&matrixFile, "f", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	pFile := args[0]
	p, err := openProject(pFile)
	if err != nil {
		return err
	}

	var m *matrix.Matrix
	if mf := p.Path(project.Observations); mf != "" {
		m, err = readMatrix(nil, mf)
		if err != nil {
			return fmt.Errorf("on project %q: %v", mf, err)
		}
	}
	if m == nil {
		m = matrix.New()
	}

	args = args[1:]
	if len(args) == 0 {
		args = append(args, "-")
	}
	for _, a := range args {
		fn := a
		if fn == "-" {
			fn = ""
			a = "stdin"
		}
		nm, err := readMatrix(c.Stdin(), fn)
		if err != nil {
			return err
		}
		merge(m, nm)
	}

	if matrixFile == "" {
		matrixFile = p.Path(project.Observations)
		if matrixFile == "" {
			matrixFile = "observations.tab"
		}
	}

	if err := writeMatrix(m); err != nil {
		return err
	}
	p.Add(project.Observations, matrixFile)
	if err := p.Write(); err != nil {
		return err
	}

	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func readMatrix(r io.Reader, name string) (*matrix.Matrix, error) {
	if name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	m, err := matrix.ReadTSV(r)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return m, nil
}

// Merge adds all the observations of a matrix
// to a destination matrix.
func merge(dst, src *matrix.Matrix) {
	chars := src.Chars()
	for r, tax := range src.Taxa() {
		for c, char := range chars {
			dst.Set(tax, char, src.At(r, c))
		}
	}
}

func writeMatrix(m *matrix.Matrix) (err error) {
	f, err := os.Create(matrixFile)
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
		return fmt.Errorf("while writing to %q: %v", matrixFile, err)
	}
	return nil
}
