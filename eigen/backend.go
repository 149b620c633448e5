// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eigenkit/matrix"
)

// ErrBackendFailed indicates that a backend could not complete the
// decomposition (non-convergence or an internal solver failure).
var ErrBackendFailed = errors.New("eigen: backend failed")

// Backend is a symmetric eigen-decomposition strategy. Implementations
// must be independent of each other so that agreement between two of
// them is evidence of correctness, not of shared code.
//
// SymDecompose returns eigenvalues sorted descending and an orthonormal
// matrix whose column k is the eigenvector of value k.
type Backend interface {
	Name() string
	SymDecompose(a *matrix.Dense) ([]float64, *matrix.Dense, error)
}

// Jacobi decomposes via the in-repo cyclic Jacobi solver.
// The zero value is not ready; use NewJacobi for the documented defaults.
type Jacobi struct {
	Tol     float64 // convergence threshold for off-diagonal mass
	MaxIter int     // rotation cap
}

// DefaultJacobiTol and DefaultJacobiMaxIter are safe for correlation and
// Burt-residual matrices up to a few hundred columns.
const (
	DefaultJacobiTol     = 1e-10
	DefaultJacobiMaxIter = 10000
)

// NewJacobi returns a Jacobi backend with the default tolerance and
// iteration cap.
func NewJacobi() Jacobi {
	return Jacobi{Tol: DefaultJacobiTol, MaxIter: DefaultJacobiMaxIter}
}

// Name identifies the backend in divergence reports.
func (Jacobi) Name() string { return "jacobi" }

// SymDecompose runs matrix.Eigen and orders the eigenpairs descending.
func (j Jacobi) SymDecompose(a *matrix.Dense) ([]float64, *matrix.Dense, error) {
	vals, vecs, err := matrix.Eigen(a, j.Tol, j.MaxIter)
	if err != nil {
		return nil, nil, fmt.Errorf("jacobi: %w", err)
	}
	vals, vecs, err = matrix.SortEigenDesc(vals, vecs)
	if err != nil {
		return nil, nil, fmt.Errorf("jacobi: %w", err)
	}

	return vals, vecs, nil
}
