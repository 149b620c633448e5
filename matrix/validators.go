// SPDX-License-Identifier: MIT
// Package matrix: single canonical source of truth for validation checks.
// Kernels stay minimal by delegating nil/shape/symmetry guards here.
// Validators return plain sentinels (wrapped with a validator tag) so call
// sites can wrap uniformly with their own operation tag.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf keeps consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both non-nil (caller responsibility). Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks that m is square and |m[i,j]−m[j,i]| ≤ eps for
// every upper-triangle pair. Use before spectral methods to fail fast.
// Complexity: O(n²) on the upper triangle only.
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var i, j int
	for i = 0; i < m.r; i++ { // fixed i→j order
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly length n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
