// SPDX-License-Identifier: MIT

// Package matrix: Dense is the single concrete matrix representation used
// across eigenkit — row-major float64 storage in one flat slice for cache
// friendliness and deterministic traversal.
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense initialized to zeros.
// Stage 1 (Validate): rows and cols must be > 0.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions.
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	// Allocate and return.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular slice of rows.
// Stage 1 (Validate): at least one row, all rows equal non-zero length,
// all entries finite (ErrNaNInf otherwise — the numeric policy of the
// whole library is "finite in, finite out").
// Stage 2 (Copy): rows are copied; the input remains caller-owned.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d: %w", i, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewDenseFromRows: row %d col %d: %w", i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col); bounds-safe. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col); bounds-safe. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Raw returns a copy of the flat row-major backing slice (length r*c).
// The copy keeps Dense immutable from the caller's perspective; interop
// with external numeric backends goes through this accessor.
// Complexity: O(r*c).
func (m *Dense) Raw() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Col extracts column j as a fresh slice of length r.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("Dense.Col(%d): %w", j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// String implements fmt.Stringer for debugging: one line per row.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%.6g", m.data[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
