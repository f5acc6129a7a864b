// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package draw

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/js-arias/sitetree/phylogeny"
)

const yStep = 16

type node struct {
	x    int
	y    int
	topY int
	botY int

	id    int
	tax   string
	label string
	char  string

	anc  *node
	desc []*node
}

type svgTree struct {
	y     int
	x     int
	taxSz int
	root  *node
}

func copyTree(t *phylogeny.Tree, stepX int, noLabels bool) svgTree {
	maxSz := 0
	var root *node
	ids := make(map[int]*node)
	for _, id := range t.Nodes() {
		var anc *node
		p := t.Parent(id)
		if p >= 0 {
			anc = ids[p]
		}

		n := &node{
			id:  id,
			tax: t.Taxon(id),
			anc: anc,
		}
		if !t.IsTerm(id) && !noLabels {
			n.label = t.Label(id)
		}
		if char, ok := t.Character(id); ok {
			n.char = char
		}
		if anc == nil {
			root = n
		} else {
			anc.desc = append(anc.desc, n)
		}
		ids[id] = n
		if len(n.tax) > maxSz {
			maxSz = len(n.tax)
		}
	}

	s := svgTree{root: root}
	s.prepare(root, stepX)
	s.y = s.y * yStep
	s.taxSz = maxSz

	return s
}

func (s *svgTree) prepare(n *node, stepX int) {
	n.x = 10
	if n.anc != nil {
		n.x = n.anc.x + stepX
	}
	if s.x < n.x {
		s.x = n.x
	}

	if n.desc == nil {
		n.y = s.y*yStep + 5
		s.y += 1
		return
	}

	botY := 0
	topY := math.MaxInt
	for _, d := range n.desc {
		s.prepare(d, stepX)
		if d.y < topY {
			topY = d.y
		}
		if d.y > botY {
			botY = d.y
		}
	}
	n.topY = topY
	n.botY = botY
	n.y = topY + (botY-topY)/2
}

func (s *svgTree) draw(w io.Writer) error {
	fmt.Fprintf(w, "%s", xml.Header)
	e := xml.NewEncoder(w)
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "height"}, Value: strconv.Itoa(s.y + 15)},
			// assume that each character has 6 pixels wide
			{Name: xml.Name{Local: "width"}, Value: strconv.Itoa(s.x + s.taxSz*6 + 10)},
			{Name: xml.Name{Local: "xmlns"}, Value: "http://www.w3.org/2000/svg"},
		},
	}
	e.EncodeToken(svg)

	g := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "stroke-width"}, Value: "2"},
			{Name: xml.Name{Local: "stroke"}, Value: "black"},
			{Name: xml.Name{Local: "stroke-linecap"}, Value: "round"},
			{Name: xml.Name{Local: "font-family"}, Value: "Verdana"},
			{Name: xml.Name{Local: "font-size"}, Value: "10"},
		},
	}
	e.EncodeToken(g)

	s.root.draw(e)
	s.root.labels(e)

	e.EncodeToken(g.End())
	e.EncodeToken(svg.End())
	if err := e.Flush(); err != nil {
		return err
	}
	return nil
}

func (n node) draw(e *xml.Encoder) {
	// horizontal line
	if n.anc != nil {
		ln := xml.StartElement{
			Name: xml.Name{Local: "line"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(n.anc.x)},
				{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(n.y)},
				{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(n.x)},
				{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(n.y)},
			},
		}
		e.EncodeToken(ln)
		e.EncodeToken(ln.End())
	}

	if n.desc == nil {
		return
	}

	// vertical line
	ln := xml.StartElement{
		Name: xml.Name{Local: "line"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x1"}, Value: strconv.Itoa(n.x)},
			{Name: xml.Name{Local: "y1"}, Value: strconv.Itoa(n.topY)},
			{Name: xml.Name{Local: "x2"}, Value: strconv.Itoa(n.x)},
			{Name: xml.Name{Local: "y2"}, Value: strconv.Itoa(n.botY)},
		},
	}
	e.EncodeToken(ln)
	e.EncodeToken(ln.End())

	for _, d := range n.desc {
		d.draw(e)
	}
}

func (n node) labels(e *xml.Encoder) {
	// the character of the edge,
	// drawn over the horizontal line
	if n.char != "" {
		text(e, n.anc.x+5, n.y-4, n.char, nil)
	}

	if n.desc == nil {
		attr := []xml.Attr{
			{Name: xml.Name{Local: "font-style"}, Value: "italic"},
		}
		text(e, n.x+10, n.y+5, n.tax, attr)
		return
	}

	// the state vector of the node,
	// drawn under the node
	if n.label != "" {
		text(e, n.x+2, n.y+12, n.label, nil)
	}

	for _, d := range n.desc {
		d.labels(e)
	}
}

func text(e *xml.Encoder, x, y int, s string, attr []xml.Attr) {
	tx := xml.StartElement{
		Name: xml.Name{Local: "text"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "x"}, Value: strconv.Itoa(x)},
			{Name: xml.Name{Local: "y"}, Value: strconv.Itoa(y)},
			{Name: xml.Name{Local: "stroke-width"}, Value: "0"},
		},
	}
	tx.Attr = append(tx.Attr, attr...)
	e.EncodeToken(tx)
	e.EncodeToken(xml.CharData(s))
	e.EncodeToken(tx.End())
}
