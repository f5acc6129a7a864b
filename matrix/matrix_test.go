// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package matrix_test

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/sitetree/matrix"
)

func TestMatrix(t *testing.T) {
	m := newMatrix()

	testMatrix(t, "matrix", m)
}

func TestTSV(t *testing.T) {
	m := newMatrix()

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	r := strings.NewReader(w.String())
	nm, err := matrix.ReadTSV(r)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}

	testMatrix(t, "tsv", nm)
}

func TestSort(t *testing.T) {
	m := matrix.New()
	m.Add("taxon 2", "a")
	m.Add("taxon 1", "c")
	m.Add("taxon 2", "c")
	m.Add("taxon 3", "b")

	if m.IsSorted() {
		t.Errorf("matrix: IsSorted: got true, want false")
	}

	s := m.Sort()
	if !s.IsSorted() {
		t.Errorf("sorted matrix: IsSorted: got false, want true")
	}

	// weight ties ("a" and "b") keep the original column order
	chars := []string{"c", "a", "b"}
	if g := s.Chars(); !reflect.DeepEqual(g, chars) {
		t.Errorf("sorted matrix: characters: got %v, want %v", g, chars)
	}

	// row content must be untouched
	for _, tx := range m.Taxa() {
		for _, c := range m.Chars() {
			if g := s.State(tx, c); g != m.State(tx, c) {
				t.Errorf("sorted matrix: state of %q for %q: got %v, want %v", c, tx, g, m.State(tx, c))
			}
		}
	}

	// sorting an already sorted matrix keeps the order
	if g := s.Sort().Chars(); !reflect.DeepEqual(g, chars) {
		t.Errorf("re-sorted matrix: characters: got %v, want %v", g, chars)
	}
}

func TestDuplicates(t *testing.T) {
	m := newMatrix()

	if a, b, ok := m.HasDuplicateTaxa(); ok {
		t.Errorf("matrix: duplicate taxa %q, %q in a matrix without duplicates", a, b)
	}
	if a, b, ok := m.HasDuplicateChars(); ok {
		t.Errorf("matrix: duplicate characters %q, %q in a matrix without duplicates", a, b)
	}

	m.Add("taxon 5", "char 1")
	m.Add("taxon 5", "char 2")
	m.Add("taxon 5", "char 3")
	a, b, ok := m.HasDuplicateTaxa()
	if !ok {
		t.Errorf("matrix: duplicate taxa not detected")
	}
	if a != "Taxon 1" || b != "Taxon 5" {
		t.Errorf("matrix: duplicate taxa: got %q, %q, want %q, %q", a, b, "Taxon 1", "Taxon 5")
	}

	d := matrix.New()
	d.Add("taxon 1", "char 1")
	d.Add("taxon 1", "char 2")
	d.Set("taxon 2", "char 1", false)
	a, b, ok = d.HasDuplicateChars()
	if !ok {
		t.Errorf("matrix: duplicate characters not detected")
	}
	if a != "char 1" || b != "char 2" {
		t.Errorf("matrix: duplicate characters: got %q, %q, want %q, %q", a, b, "char 1", "char 2")
	}
}

// NewMatrix returns the matrix
//
//	        char 1  char 2  char 3  char 4
//	taxon 1    1       1       1       0
//	taxon 2    1       1       1       1
//	taxon 3    1       1       0       0
//	taxon 4    1       0       0       0
func newMatrix() *matrix.Matrix {
	m := matrix.New()

	m.Add("taxon 1", "char 1")
	m.Add("taxon 1", "char 2")
	m.Add("taxon 1", "char 3")
	m.Set("taxon 1", "char 4", false)
	m.Add("taxon 2", "char 1")
	m.Add("taxon 2", "char 2")
	m.Add("taxon 2", "char 3")
	m.Add("taxon 2", "char 4")
	m.Add("taxon 3", "char 1")
	m.Add("taxon 3", "char 2")
	m.Add("taxon 4", "char 1")
	return m
}

func testMatrix(t testing.TB, name string, m *matrix.Matrix) {
	t.Helper()

	taxa := []string{"Taxon 1", "Taxon 2", "Taxon 3", "Taxon 4"}
	if g := m.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	chars := []string{"char 1", "char 2", "char 3", "char 4"}
	if g := m.Chars(); !reflect.DeepEqual(g, chars) {
		t.Errorf("%s: characters: got %v, want %v", name, g, chars)
	}

	states := map[string][]string{
		"Taxon 1": {"char 1", "char 2", "char 3"},
		"Taxon 2": {"char 1", "char 2", "char 3", "char 4"},
		"Taxon 3": {"char 1", "char 2"},
		"Taxon 4": {"char 1"},
	}
	for r, tx := range taxa {
		want := states[tx]
		for c, char := range chars {
			ws := false
			for _, d := range want {
				if d == char {
					ws = true
					break
				}
			}
			if g := m.State(tx, char); g != ws {
				t.Errorf("%s: state of %q for %q: got %v, want %v", name, char, tx, g, ws)
			}
			if g := m.At(r, c); g != ws {
				t.Errorf("%s: state at [%d,%d]: got %v, want %v", name, r, c, g, ws)
			}
		}
	}

	weights := []int{4, 3, 2, 1}
	for c, w := range weights {
		if g := m.Weight(c); g != w {
			t.Errorf("%s: weight of column %d: got %d, want %d", name, c, g, w)
		}
	}

	if !m.IsSorted() {
		t.Errorf("%s: IsSorted: got false, want true", name)
	}
}
