// SPDX-License-Identifier: MIT

package mca

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/tertile"
)

var (
	// ErrNoData indicates a nil categorical table or nil backend.
	ErrNoData = errors.New("mca: no input data or backend")

	// ErrEmptyCategory indicates a category with zero observations: its
	// mass is zero and the frequency weighting would divide by zero. The
	// offending category label is carried in the wrap.
	ErrEmptyCategory = errors.New("mca: empty category")

	// ErrNegativeEigenvalue indicates an eigenvalue more negative than the
	// clamp tolerance; the residual matrix is positive semi-definite by
	// construction, so this is a backend defect.
	ErrNegativeEigenvalue = errors.New("mca: negative eigenvalue beyond tolerance")
)

// negClampTol bounds the floating noise tolerated below zero.
const negClampTol = 1e-9

// Result is the immutable output of one engine invocation. Dimension
// indices are 0-based and ordered by inertia descending; only the K−Q
// nontrivial dimensions are materialized.
type Result struct {
	Labels []string  // K category labels, coordinate-table row order
	Counts []int     // marginal count per category
	Masses []float64 // c_j = count/(n·Q)
	Q      int       // discretized variables
	K      int       // total categories

	TotalInertia   float64   // closed form (1/Q)(K/Q − 1)
	SingularValues []float64 // μ_α = eig(S): Burt singular values, desc
	Eigenvalues    []float64 // λ_α = μ_α²: Burt principal inertias, desc
	InertiaPct     []float64 // λ_α/TotalInertia·100, unrounded
	BenzecriPct    []float64 // Benzécri-rescaled percentages, separate field

	Coordinates   *matrix.Dense // K×D principal coordinates F
	Contributions *matrix.Dense // K×D, each column sums to 1
	Cos2          *matrix.Dense // K×D, entries in [0,1]
}

// Analyze runs the categorical association engine over a discretized table.
//
// Stage 1 (Validate): non-nil inputs; indicator expansion; every category
// must have at least one member (ErrEmptyCategory, detected before the
// eigenproblem is formed).
// Stage 2 (Weight): Burt B = ZᵀZ, masses c_j, residual S as documented in
// the package comment. S is symmetric by construction.
// Stage 3 (Decompose): backend eigen on S; clamp noise-level negatives;
// keep the K−Q nontrivial dimensions.
// Stage 4 (Derive): coordinates, contributions, cos², raw and
// Benzécri-corrected inertia percentages.
func Analyze(ct *tertile.Table, be eigen.Backend) (*Result, error) {
	if ct == nil || be == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNoData)
	}

	ind, err := ct.Indicator()
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	for j, count := range ind.Counts {
		if count == 0 {
			return nil, fmt.Errorf("Analyze: category %q: %w", ind.Labels[j], ErrEmptyCategory)
		}
	}

	n := ct.Rows()
	q := ind.Q
	k := len(ind.Labels)
	dims := k - q

	masses := make([]float64, k)
	for j, count := range ind.Counts {
		masses[j] = float64(count) / float64(n*q)
	}

	zt, err := matrix.Transpose(ind.Z)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	burt, err := matrix.Mul(zt, ind.Z)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	// S[j,l] = (B[j,l]/(nQ²) − c_j·c_l)/√(c_j·c_l).
	resid, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	grand := float64(n * q * q)
	var j, l int
	var b, s float64
	for j = 0; j < k; j++ {
		for l = j; l < k; l++ {
			b, err = burt.At(j, l)
			if err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
			s = (b/grand - masses[j]*masses[l]) / math.Sqrt(masses[j]*masses[l])
			// symmetric fill keeps ValidateSymmetric exact
			if err = resid.Set(j, l, s); err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
			if err = resid.Set(l, j, s); err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
		}
	}

	mus, vecs, err := be.SymDecompose(resid)
	if err != nil {
		return nil, fmt.Errorf("Analyze: backend %s: %w", be.Name(), err)
	}
	for a, mu := range mus {
		if mu < 0 {
			if mu < -negClampTol {
				return nil, fmt.Errorf("Analyze: backend %s: μ[%d]=%g: %w", be.Name(), a, mu, ErrNegativeEigenvalue)
			}
			mus[a] = 0
		}
	}
	mus = mus[:dims] // trailing values belong to the trivial/null space

	lambdas := make([]float64, dims)
	for a, mu := range mus {
		lambdas[a] = mu * mu
	}

	coords, err := matrix.NewDense(k, dims)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	contrib, err := matrix.NewDense(k, dims)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	cos2, err := matrix.NewDense(k, dims)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	var a int
	var v, f float64
	for j = 0; j < k; j++ {
		invRoot := 1.0 / math.Sqrt(masses[j])
		for a = 0; a < dims; a++ {
			v, err = vecs.At(j, a)
			if err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
			f = mus[a] * v * invRoot
			if err = coords.Set(j, a, f); err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
			if lambdas[a] > 0 {
				// c_j·F²/λ reduces to v², the squared eigenvector entry.
				if err = contrib.Set(j, a, masses[j]*f*f/lambdas[a]); err != nil {
					return nil, fmt.Errorf("Analyze: %w", err)
				}
			}
		}
	}

	// cos² denominator: χ²-distance of the category over all dims.
	var dist, c float64
	for j = 0; j < k; j++ {
		dist = 0.0
		for a = 0; a < dims; a++ {
			f, err = coords.At(j, a)
			if err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
			dist += f * f
		}
		if dist == 0 {
			continue // category at the centroid: all cos² stay zero
		}
		for a = 0; a < dims; a++ {
			f, _ = coords.At(j, a)
			c = f * f / dist
			if err = cos2.Set(j, a, c); err != nil {
				return nil, fmt.Errorf("Analyze: %w", err)
			}
		}
	}

	total := totalInertia(q, k)
	inertiaPct := make([]float64, dims)
	for a = 0; a < dims; a++ {
		inertiaPct[a] = lambdas[a] / total * 100
	}

	return &Result{
		Labels:         ind.Labels,
		Counts:         ind.Counts,
		Masses:         masses,
		Q:              q,
		K:              k,
		TotalInertia:   total,
		SingularValues: mus,
		Eigenvalues:    lambdas,
		InertiaPct:     inertiaPct,
		BenzecriPct:    benzecri(mus, q),
		Coordinates:    coords,
		Contributions:  contrib,
		Cos2:           cos2,
	}, nil
}

// totalInertia is the fixed closed form I = (1/Q)(K/Q − 1), independent
// of the decomposition.
func totalInertia(q, k int) float64 {
	fq := float64(q)

	return (float64(k)/fq - 1) / fq
}

// benzecri rescales the dimensions that carry more than average signal:
// λ*_α = (Q/(Q−1))²·(μ_α − 1/Q)² for μ_α > 1/Q, else 0; percentages are
// taken over Σλ*. Dimensions at or below 1/Q report 0.
func benzecri(mus []float64, q int) []float64 {
	adjusted := make([]float64, len(mus))
	factor := float64(q) / float64(q-1)
	threshold := 1.0 / float64(q)
	var sum float64
	for a, mu := range mus {
		if mu > threshold {
			d := factor * (mu - threshold)
			adjusted[a] = d * d
			sum += adjusted[a]
		}
	}

	out := make([]float64, len(mus))
	if sum == 0 {
		return out
	}
	for a := range adjusted {
		out[a] = adjusted[a] / sum * 100
	}

	return out
}
