// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a binary character matrix
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the taxonomic name of the taxon
//   - character, the name of the character
//   - state, the state of the character ("0" or "1")
//
// Here is an example file:
//
//	taxon	character	state
//	Pan troglodytes	bipedal	0
//	Pan troglodytes	large brain	1
//	Homo sapiens	bipedal	1
//	Homo sapiens	large brain	1
//
// Characters take their column order
// from their first appearance in the file.
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range []string{"taxon", "character", "state"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	m := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := canon(row[fields[f]])
		if tax == "" {
			continue
		}

		f = "character"
		char := strings.Join(strings.Fields(strings.ToLower(row[fields[f]])), " ")
		if char == "" {
			continue
		}

		f = "state"
		var state bool
		switch s := strings.TrimSpace(row[fields[f]]); s {
		case "0":
		case "1":
			state = true
		default:
			return nil, fmt.Errorf("on row %d: field %q: invalid state %q", ln, f, s)
		}

		m.Set(tax, char, state)
	}
	return m, nil
}

// TSV writes a matrix to a TSV file.
// All taxon-character pairs are written,
// taxa in row order
// and characters in column order,
// so the matrix can be read back
// with the same row and column order.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"taxon", "character", "state"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for r, tx := range m.taxa {
		for c, char := range m.chars {
			state := "0"
			if m.rows[r][c] {
				state = "1"
			}
			row := []string{
				tx,
				char,
				state,
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
