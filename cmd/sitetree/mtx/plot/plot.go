// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to plot
// the character weights of the matrix
// of a SiteTree project.
package plot

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: "plot [-o|--output <plot-file>] <project-file>",
	Short: "plot character weights",
	Long: `
Command plot reads the character matrix of a SiteTree project and plots the
weight of each character (the number of taxa with the derived state) as a bar
chart, with the characters in matrix column order.

The argument of the command is the name of the project file.

By default the plot will be saved as "weights.png". Use the flag -o, or
--output, to define a different file name; the format of the plot is set by
the file extension (e.g., .png, .svg, or .pdf).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var outFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&outFile, "output", "weights.png", "")
	c.Flags().StringVar(&outFile, "o", "weights.png", "")
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
	if m.Cols() == 0 {
		return fmt.Errorf("matrix %q: without characters", p.Path(project.Observations))
	}

	vals := make(plotter.Values, m.Cols())
	for i := range vals {
		vals[i] = float64(m.Weight(i))
	}

	pt := plot.New()
	pt.Title.Text = fmt.Sprintf("character weights [%s]", p.Path(project.Observations))
	pt.Y.Label.Text = "weight"

	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	pt.Add(bars)
	pt.NominalX(m.Chars()...)

	if err := pt.Save(vg.Points(float64(m.Cols()*30+100)), 4*vg.Inch, outFile); err != nil {
		return fmt.Errorf("while writing plot %q: %v", outFile, err)
	}
	return nil
}
