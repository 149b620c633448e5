// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels.
//
// Purpose:
//   - Provide the small kernel set the factor engines compose from:
//     Mul, Transpose, Scale, ScaleCols, ScaleRows, MatVec.
//   - Keep all tight loops here with fixed traversal orders.
//
// Determinism & Performance:
//   - Every kernel walks the flat row-major buffer in a fixed order.
//   - One allocation per kernel (the result); operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping; no magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opScaleCols = "ScaleCols"
	opScaleRows = "ScaleRows"
	opMatVec    = "MatVec"
	opEigen     = "Eigen"
	opSortEigen = "SortEigenDesc"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel
// via %w so errors.Is keeps matching. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Stage 1 (Validate): non-nil operands, A.Cols == B.Rows.
// Stage 2 (Execute): i→k→j order with row-major strides; zero A[i,k]
// entries are skipped to avoid useless multiplies.
// Complexity: O(r·n·c) time, O(r·c) space.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, j, k int
	var av float64
	var baseA, baseB, baseR int
	for i = 0; i < a.r; i++ { // deterministic row order
		baseA = i * a.c
		baseR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[baseA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			baseB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[baseR+j] += av * b.data[baseB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense; m is never mutated.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m as a fresh Dense. NaN/Inf in alpha propagate.
// Complexity: O(r·c).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	n := m.r * m.c
	for idx := 0; idx < n; idx++ { // flat 0..n-1
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// ScaleCols returns m·diag(s): column j multiplied by s[j].
// Used for z-scoring (s = 1/std) and CA weighting (s = 1/√mass).
// Stage 1 (Validate): non-nil m, len(s) == Cols.
// Complexity: O(r·c).
func ScaleCols(m *Dense, s []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(s, m.c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[base+j] = m.data[base+j] * s[j]
		}
	}

	return res, nil
}

// ScaleRows returns diag(s)·m: row i multiplied by s[i].
// Stage 1 (Validate): non-nil m, len(s) == Rows.
// Complexity: O(r·c).
func ScaleRows(m *Dense, s []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(s, m.r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	res, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	var i, j, base int
	var f float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		f = s[i]
		for j = 0; j < m.c; j++ {
			res.data[base+j] = m.data[base+j] * f
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x of length Cols.
// Fixed i→j order; zero x[j] entries skip the multiply.
// Complexity: O(r·c) time, O(r) space.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, m.r)
	var i, j, base int
	var acc, xv float64
	for i = 0; i < m.r; i++ {
		acc = 0.0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
