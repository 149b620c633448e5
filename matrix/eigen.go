// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigensolver (cyclic Jacobi with max-pivot scan).
//
// Purpose:
//   - Eigen-decompose symmetric matrices deterministically: fixed i→j pivot
//     search, fixed update order, no randomness, no global state.
//   - SortEigenDesc gives every consumer the same descending ordering so
//     factor engines and cross-validation compare like with like.

package matrix

import (
	"math"
	"sort"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations.
//
// Stage 1 (Validate): non-nil, square, symmetric within tol.
// Stage 2 (Iterate): pick (p,q) with the largest |A[p,q]| in i→j order,
// apply the rotation to A and accumulate it into Q, until the largest
// off-diagonal entry drops below tol or maxIter is exhausted.
//
// Inputs:
//   - m: symmetric matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-10..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose columns are the matching orthonormal eigenvectors.
//
// Errors:
//   - ErrNilMatrix / ErrNonSquare / ErrAsymmetry from validation.
//   - ErrEigenFailed when the off-diagonal mass is still ≥ tol after maxIter.
//
// Determinism: fixed pivot scan and update order give stable results.
// Complexity: O(maxIter·n²) scans + O(n) per rotation; O(n²) space.
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	n := m.r
	A := m.Clone() // working copy; the input stays immutable
	Q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		Q.data[i*n+i] = 1.0 // Q starts as identity
	}

	var (
		iter, p, q         int
		base               int
		maxOff, off        float64
		app, aqq, apq      float64
		theta, t, c, s     float64
		aip, aiq, qip, qiq float64
		nip, niq           float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Pivot: largest |A[p,q]| over the upper triangle, fixed i→j scan.
		maxOff = 0.0
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[base+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		// Rotation parameters from A[p,p], A[q,q], A[p,q].
		app = A.data[p*n+p]
		aqq = A.data[q*n+q]
		apq = A.data[p*n+q]
		if math.Abs(apq) <= tol {
			continue // no-op rotation guards against division blow-ups
		}
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// Apply the rotation to A, keeping symmetry explicit.
		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip = A.data[i*n+p]
			aiq = A.data[i*n+q]
			nip = c*aip - s*aiq
			niq = s*aip + c*aiq
			A.data[i*n+p], A.data[p*n+i] = nip, nip
			A.data[i*n+q], A.data[q*n+i] = niq, niq
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i = 0; i < n; i++ {
			qip = Q.data[i*n+p]
			qiq = Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	// Final convergence check over the upper triangle.
	maxOff = 0.0
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			off = math.Abs(A.data[base+j])
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}

// SortEigenDesc reorders eigenpairs by eigenvalue descending and returns
// fresh value/vector containers; inputs are not mutated. Ties keep their
// relative order (stable sort), so degenerate subspaces stay deterministic.
//
// Inputs: vals of length n, vecs n×n with eigenvectors as columns
// (column k matches vals[k]).
// Errors: ErrNilMatrix, ErrDimensionMismatch on length/shape mismatch.
// Complexity: O(n log n) sort + O(n²) column permutation.
func SortEigenDesc(vals []float64, vecs *Dense) ([]float64, *Dense, error) {
	if err := ValidateNotNil(vecs); err != nil {
		return nil, nil, matrixErrorf(opSortEigen, err)
	}
	n := len(vals)
	if vecs.r != n || vecs.c != n {
		return nil, nil, matrixErrorf(opSortEigen, ErrDimensionMismatch)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return vals[order[a]] > vals[order[b]]
	})

	outVals := make([]float64, n)
	outVecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opSortEigen, err)
	}
	var i, k, src int
	for k = 0; k < n; k++ {
		src = order[k]
		outVals[k] = vals[src]
		for i = 0; i < n; i++ {
			outVecs.data[i*n+k] = vecs.data[i*n+src]
		}
	}

	return outVals, outVecs, nil
}
