// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package dot implements a command to export
// the phylogenies of a SiteTree project
// as Graphviz DOT files.
package dot

import (
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/sitetree/phylogeny"
	"github.com/js-arias/sitetree/project"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

var Command = &command.Command{
	Usage: `dot [--tree <tree>]
	[-o|--output <out-prefix>] <project-file>`,
	Short: "export phylogenies as Graphviz DOT files",
	Long: `
Command dot reads a SiteTree project and writes its trees into DOT files, the
graph format of Graphviz.

Internal nodes are labeled with their state vectors, terminal nodes with
their taxon names, and labeled edges with their characters.

The argument of the command is the name of the project file.

By default, all trees in the project will be exported, and the names of the
trees will be used as the output file names. If the flag --tree is set, only
the indicated tree will be exported. Use the flag -o, or --output, to define
a prefix for the resulting files.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var treeName string
var outPrefix string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&outPrefix, "output", "", "")
	c.Flags().StringVar(&outPrefix, "o", "", "")
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
		if err := writeDot(tn, t); err != nil {
			return err
		}
	}
	return nil
}

type dotNode struct {
	id    int64
	label string
	term  bool
}

func (n dotNode) ID() int64 { return n.id }

func (n dotNode) Attributes() []encoding.Attribute {
	attr := []encoding.Attribute{
		{Key: "label", Value: n.label},
	}
	if n.term {
		attr = append(attr, encoding.Attribute{Key: "shape", Value: "box"})
	}
	return attr
}

type dotEdge struct {
	f, t  graph.Node
	label string
}

func (e dotEdge) From() graph.Node { return e.f }
func (e dotEdge) To() graph.Node   { return e.t }

func (e dotEdge) ReversedEdge() graph.Edge {
	return dotEdge{f: e.t, t: e.f, label: e.label}
}

func (e dotEdge) Attributes() []encoding.Attribute {
	if e.label == "" {
		return nil
	}
	return []encoding.Attribute{
		{Key: "label", Value: e.label},
	}
}

// MakeGraph copies a phylogeny
// into a directed graph.
func makeGraph(t *phylogeny.Tree) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()

	nodes := make(map[int]dotNode)
	for _, id := range t.Nodes() {
		n := dotNode{
			id:    int64(id),
			label: t.Label(id),
		}
		if t.IsTerm(id) {
			n.label = t.Taxon(id)
			n.term = true
		}
		nodes[id] = n
		g.AddNode(n)

		p := t.Parent(id)
		if p < 0 {
			continue
		}
		e := dotEdge{
			f: nodes[p],
			t: n,
		}
		if char, ok := t.Character(id); ok {
			e.label = char
		}
		g.SetEdge(e)
	}
	return g
}

func writeDot(name string, t *phylogeny.Tree) (err error) {
	g := makeGraph(t)
	b, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return fmt.Errorf("when exporting tree %q: %v", name, err)
	}

	if outPrefix != "" {
		name = fmt.Sprintf("%s-%s.gv", outPrefix, name)
	} else {
		name += ".gv"
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

	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("while writing file %q: %v", name, err)
	}
	return nil
}
