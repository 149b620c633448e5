// SPDX-License-Identifier: MIT
// Package matrix: column statistics shared by the factor engines.
//
// Purpose:
//   - Provide deterministic column transforms (centering, z-scoring) and
//     their aggregates (means, sample stds, covariance, correlation) as
//     compositions over the canonical kernels.
//
// Policy notes:
//   - All divisors are the sample n−1 form; callers must supply r >= 2.
//   - Correlation zeroes degenerate (std==0) columns rather than failing;
//     the stricter abort-with-column-name policy lives in package dataset,
//     which owns the standardization contract.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opColumnStds    = "ColumnStds"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// ColumnMeans returns the per-column means of m (length Cols).
// Deterministic i→j accumulation. Complexity: O(r·c).
func ColumnMeans(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	means := make([]float64, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			means[j] += m.data[base+j]
		}
	}
	invR := 1.0 / float64(m.r)
	for j = 0; j < m.c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// ColumnStds returns per-column sample standard deviations using the n−1
// divisor, along with the means used for centering.
// Stage 1 (Validate): non-nil, r >= 2 (ErrDimensionMismatch otherwise).
// Complexity: O(r·c).
func ColumnStds(m *Dense) (stds, means []float64, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opColumnStds, err)
	}
	if m.r < 2 {
		return nil, nil, matrixErrorf(opColumnStds, ErrDimensionMismatch)
	}

	means, err = ColumnMeans(m)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStds, err)
	}

	sumsq := make([]float64, m.c)
	var i, j, base int
	var d float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			d = m.data[base+j] - means[j]
			sumsq[j] += d * d
		}
	}
	inv := 1.0 / float64(m.r-1)
	stds = make([]float64, m.c)
	for j = 0; j < m.c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return stds, means, nil
}

// CenterColumns subtracts the per-column mean from every element and
// returns the centered copy plus the means. Complexity: O(r·c).
func CenterColumns(m *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	means, err := ColumnMeans(m)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			out.data[base+j] = m.data[base+j] - means[j]
		}
	}

	return out, means, nil
}

// Covariance computes the sample covariance of columns:
// Cov = (Xcᵀ Xc)/(r−1) where Xc is the column-centered input.
// Stage 1 (Validate): non-nil, r >= 2.
// Stage 2 (Compose): CenterColumns → Transpose → Mul → Scale.
// Output is symmetric; the diagonal holds per-column sample variances.
// Complexity: O(r·c²) time, O(c²) space.
func Covariance(m *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if m.r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(m)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(m.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// Correlation computes the Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r−1) with Z = (X − mean)·diag(1/std).
// Degenerate columns (std==0) are zeroed by construction — their rows and
// columns in Corr are all zeros, never NaN.
// Returns the correlation matrix, the column means and the sample stds.
// Complexity: O(r·c²) time, O(c²) space.
func Correlation(m *Dense) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	if m.r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	Xc, means, err := CenterColumns(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	stds, _, err := ColumnStds(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	invStd := make([]float64, m.c)
	for j := 0; j < m.c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}
	Z, err := ScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Zt, err := Transpose(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Mul(Zt, Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, 1.0/float64(m.r-1))
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}
