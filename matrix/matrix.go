// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package matrix provides a binary character matrix
// for a set of taxa,
// under the infinite sites model
// (i.e., each character changes from 0 to 1
// only once in evolutionary history).
package matrix

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A Matrix is a binary character matrix.
// Rows are taxa
// and columns are characters.
// A state is true if the taxon has the derived state
// (i.e., a 1 in the matrix)
// for the character.
//
// The all-zero ancestor is implicit
// and never stored as a row.
type Matrix struct {
	taxa  []string
	chars []string
	taxon map[string]int
	char  map[string]int
	rows  [][]bool
}

// New creates a new empty matrix.
func New() *Matrix {
	return &Matrix{
		taxon: make(map[string]int),
		char:  make(map[string]int),
	}
}

// Add adds the derived state of a character
// for a given taxon.
// The taxon and the character will be added to the matrix
// if they are not defined already.
func (m *Matrix) Add(taxon, character string) {
	m.Set(taxon, character, true)
}

// Set sets the state of a character
// for a given taxon.
// The taxon and the character will be added to the matrix
// if they are not defined already,
// even if the assigned state is 0.
func (m *Matrix) Set(taxon, character string, state bool) {
	taxon = canon(taxon)
	if taxon == "" {
		return
	}
	character = strings.Join(strings.Fields(strings.ToLower(character)), " ")
	if character == "" {
		return
	}

	r, ok := m.taxon[taxon]
	if !ok {
		r = len(m.taxa)
		m.taxon[taxon] = r
		m.taxa = append(m.taxa, taxon)
		m.rows = append(m.rows, make([]bool, len(m.chars)))
	}

	c, ok := m.char[character]
	if !ok {
		c = len(m.chars)
		m.char[character] = c
		m.chars = append(m.chars, character)
		for i := range m.rows {
			m.rows[i] = append(m.rows[i], false)
		}
	}

	m.rows[r][c] = state
}

// At returns the state of the character at column c
// for the taxon at row r.
// Rows follow the order of Taxa
// and columns the order of Chars.
func (m *Matrix) At(r, c int) bool {
	return m.rows[r][c]
}

// Char returns the name of the character at column c.
func (m *Matrix) Char(c int) string {
	return m.chars[c]
}

// Chars returns the characters of the matrix
// in column order.
func (m *Matrix) Chars() []string {
	return slices.Clone(m.chars)
}

// Cols returns the number of characters in the matrix.
func (m *Matrix) Cols() int {
	return len(m.chars)
}

// Rows returns the number of taxa in the matrix.
func (m *Matrix) Rows() int {
	return len(m.taxa)
}

// State returns the state of a character
// for a given taxon.
// It returns false for any taxon or character
// not defined in the matrix.
func (m *Matrix) State(taxon, character string) bool {
	taxon = canon(taxon)
	if taxon == "" {
		return false
	}
	r, ok := m.taxon[taxon]
	if !ok {
		return false
	}

	character = strings.Join(strings.Fields(strings.ToLower(character)), " ")
	if character == "" {
		return false
	}
	c, ok := m.char[character]
	if !ok {
		return false
	}

	return m.rows[r][c]
}

// Taxon returns the name of the taxon at row r.
func (m *Matrix) Taxon(r int) string {
	return m.taxa[r]
}

// Taxa returns the taxa of the matrix
// in row order.
func (m *Matrix) Taxa() []string {
	return slices.Clone(m.taxa)
}

// Weight returns the weight of the character at column c,
// that is the number of taxa
// with the derived state of the character.
func (m *Matrix) Weight(c int) int {
	w := 0
	for _, r := range m.rows {
		if r[c] {
			w++
		}
	}
	return w
}

// HasDuplicateTaxa returns a pair of taxa
// with identical character states,
// if any.
func (m *Matrix) HasDuplicateTaxa() (string, string, bool) {
	for i := 0; i < len(m.taxa); i++ {
		for j := i + 1; j < len(m.taxa); j++ {
			if slices.Equal(m.rows[i], m.rows[j]) {
				return m.taxa[i], m.taxa[j], true
			}
		}
	}
	return "", "", false
}

// HasDuplicateChars returns a pair of characters
// with identical states over all taxa,
// if any.
func (m *Matrix) HasDuplicateChars() (string, string, bool) {
	for i := 0; i < len(m.chars); i++ {
		for j := i + 1; j < len(m.chars); j++ {
			eq := true
			for _, r := range m.rows {
				if r[i] != r[j] {
					eq = false
					break
				}
			}
			if eq {
				return m.chars[i], m.chars[j], true
			}
		}
	}
	return "", "", false
}

// IsSorted returns true if the character weights
// are non-increasing from left to right.
func (m *Matrix) IsSorted() bool {
	prev := len(m.taxa) + 1
	for c := range m.chars {
		w := m.Weight(c)
		if w > prev {
			return false
		}
		prev = w
	}
	return true
}

// Sort returns a new matrix
// with the characters sorted by weight,
// from the most frequent to the least frequent character.
// Characters with equal weight
// keep their relative column order.
// The source matrix is not modified.
func (m *Matrix) Sort() *Matrix {
	cols := make([]int, len(m.chars))
	for i := range cols {
		cols[i] = i
	}
	slices.SortStableFunc(cols, func(a, b int) int {
		return m.Weight(b) - m.Weight(a)
	})

	n := New()
	n.taxa = slices.Clone(m.taxa)
	for i, tx := range n.taxa {
		n.taxon[tx] = i
	}
	n.chars = make([]string, len(cols))
	for i, c := range cols {
		n.chars[i] = m.chars[c]
		n.char[m.chars[c]] = i
	}
	n.rows = make([][]bool, len(m.rows))
	for i, r := range m.rows {
		row := make([]bool, len(cols))
		for j, c := range cols {
			row[j] = r[c]
		}
		n.rows[i] = row
	}
	return n
}

// Canon returns a taxon name
// in its canonical form.
func canon(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	name = strings.ToLower(name)
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[n:]
}
