// SPDX-License-Identifier: MIT

// Package eigen defines the pluggable symmetric-eigen backend the factor
// engines decompose through, with two independent implementations:
//
//	Jacobi — the in-repo cyclic Jacobi solver (matrix.Eigen)
//	Gonum  — gonum.org/v1/gonum's LAPACK-style mat.EigenSym
//
// Both return eigenpairs sorted by eigenvalue descending with orthonormal
// eigenvector columns, so results are directly comparable. Running the
// same analysis through both and diffing the spectra (package crossval)
// is the correctness check for the whole numeric chain: two unrelated
// algorithms agreeing to ~1e-9 on the same input rarely share a bug.
//
// Errors: ErrBackendFailed wraps any backend-specific failure; shape and
// symmetry violations surface as the matrix package sentinels.
package eigen
