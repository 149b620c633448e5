// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigenkit/matrix"
)

// Gonum decomposes via gonum's mat.EigenSym — an entirely separate
// numeric lineage from the in-repo Jacobi solver, which is exactly what
// cross-validation needs.
type Gonum struct{}

// NewGonum returns the gonum-backed eigen backend.
func NewGonum() Gonum { return Gonum{} }

// Name identifies the backend in divergence reports.
func (Gonum) Name() string { return "gonum" }

// SymDecompose factorizes a symmetric matrix with mat.EigenSym and
// reorders the ascending gonum output to the descending contract.
//
// Stage 1 (Validate): square + symmetric via the shared validators, so
// both backends reject the same inputs with the same sentinels.
// Stage 2 (Factorize): mat.NewSymDense over the flat copy; Factorize with
// vectors. A false return maps to ErrBackendFailed.
// Stage 3 (Reorder): gonum yields eigenvalues ascending; reverse values
// and vector columns into fresh containers.
//
// Complexity: O(n³) factorization, O(n²) reorder.
func (Gonum) SymDecompose(a *matrix.Dense) ([]float64, *matrix.Dense, error) {
	if err := matrix.ValidateSymmetric(a, 1e-9); err != nil {
		return nil, nil, fmt.Errorf("gonum: %w", err)
	}

	n := a.Rows()
	sym := mat.NewSymDense(n, a.Raw())

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("gonum: Factorize: %w", ErrBackendFailed)
	}

	asc := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	outVals := make([]float64, n)
	outVecs, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("gonum: %w", err)
	}
	var i, k, src int
	for k = 0; k < n; k++ {
		src = n - 1 - k // descending order
		outVals[k] = asc[src]
		for i = 0; i < n; i++ {
			if err = outVecs.Set(i, k, vecs.At(i, src)); err != nil {
				return nil, nil, fmt.Errorf("gonum: %w", err)
			}
		}
	}

	return outVals, outVecs, nil
}
