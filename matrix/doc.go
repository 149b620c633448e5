// SPDX-License-Identifier: MIT

// Package matrix provides the numeric core of eigenkit: a concrete,
// row-major Dense matrix plus the small set of deterministic kernels the
// factor-analysis engines are built from.
//
// What lives here:
//
//	Dense            — flat row-major float64 storage, bounds-safe At/Set
//	Mul/Transpose/…  — canonical kernels with fixed loop orders
//	ScaleCols/Rows   — diagonal scaling used for z-scoring and CA weighting
//	Eigen            — cyclic Jacobi eigensolver for symmetric matrices
//	SortEigenDesc    — eigenpair ordering shared by every consumer
//	ColumnMeans/Stds — sample (n−1) column statistics
//	Covariance       — (Xcᵀ Xc)/(n−1)
//	Correlation      — Pearson correlation via z-scoring
//
// Error policy:
//
//	All functions return package sentinels (ErrNilMatrix, ErrBadShape,
//	ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ErrAsymmetry,
//	ErrNaNInf, ErrEigenFailed) matched via errors.Is; call sites wrap with
//	an operation tag. No function panics on user input.
//
// Determinism:
//
//	Every kernel traverses in a fixed order and holds no global state.
//	Identical inputs produce bit-identical outputs across runs.
//
// Complexity is documented per function; the most expensive routine is
// Eigen at O(sweeps·n³).
package matrix
