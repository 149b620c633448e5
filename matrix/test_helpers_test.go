// SPDX-License-Identifier: MIT
// Package matrix_test: shared deterministic fixtures and comparison helpers.
// All fixture data is finite and well-formed so numeric policy never
// interferes with the property under test.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eigenkit/matrix"
)

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values or fails.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = vals[i*c : (i+1)*c]
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// close reports |a−b| ≤ atol + rtol·|b|.
func closeTo(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// sliceClose asserts element-wise closeness of two float slices.
func sliceClose(t *testing.T, got, want []float64, rtol, atol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if !closeTo(got[i], want[i], rtol, atol) {
			t.Fatalf("element %d: got %g want %g", i, got[i], want[i])
		}
	}
}

// CompareClose asserts element-wise closeness of two matrices.
func CompareClose(t *testing.T, a, b *matrix.Dense, rtol, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if !closeTo(MustAt(t, a, i, j), MustAt(t, b, i, j), rtol, atol) {
				t.Fatalf("(%d,%d): got %g want %g", i, j, MustAt(t, a, i, j), MustAt(t, b, i, j))
			}
		}
	}
}
