// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/eigenkit/dataset"
	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
)

var (
	// ErrNoData indicates a nil standardized table or nil backend.
	ErrNoData = errors.New("pca: no input data or backend")

	// ErrNegativeEigenvalue indicates an eigenvalue more negative than the
	// clamp tolerance — the correlation matrix is positive semi-definite
	// by construction, so this is a backend defect, not a data property.
	ErrNegativeEigenvalue = errors.New("pca: negative eigenvalue beyond tolerance")
)

// negClampTol bounds the floating noise tolerated below zero before an
// eigenvalue is treated as a genuine failure rather than clamped.
const negClampTol = 1e-9

// Options configures the linear factor engine.
type Options struct {
	// VarianceTarget is the cumulative-variance retention threshold used
	// for Result.TargetK. Must lie in (0, 1].
	VarianceTarget float64

	// SymmetryTol bounds |Σ[i,j]−Σ[j,i]| in the sanity check.
	SymmetryTol float64

	// Logger receives the rank-deficiency warning. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults: 0.80 variance target,
// 1e-9 symmetry tolerance, the process-default logger.
func DefaultOptions() Options {
	return Options{VarianceTarget: 0.80, SymmetryTol: 1e-9}
}

// Result is the immutable output of one engine invocation.
// Component indices are 0-based and ordered by eigenvalue descending.
type Result struct {
	Variables []string // variable names, loading-table row order

	Eigenvalues   []float64     // λ₁ ≥ … ≥ λ_p ≥ 0
	Vectors       *matrix.Dense // p×p, orthonormal eigenvector columns
	Loadings      *matrix.Dense // p×p, ℓ_jk = v_jk·√λ_k
	Scores        *matrix.Dense // n×p, component scores X·V
	SharePct      []float64     // τ_k = λ_k/Σλ·100, unrounded
	CumulativePct []float64     // running sum of SharePct

	KaiserK       int  // number of components with λ > 1
	TargetK       int  // smallest K reaching Options.VarianceTarget
	RankDeficient bool // p > n−1: Σ cannot be full rank
}

// Analyze runs the linear factor engine over a standardized table.
//
// Stage 1 (Validate): non-nil input and backend; VarianceTarget in (0,1].
// Stage 2 (Correlate): Σ = XᵀX/(n−1); verify symmetry within tolerance.
// Stage 3 (Warn): p > n−1 logs a rank-deficiency warning and proceeds —
// the decomposition stays mathematically defined, trailing eigenvalues
// land near zero.
// Stage 4 (Decompose): backend eigen, descending order; clamp noise-level
// negatives to zero, fail on anything more negative.
// Stage 5 (Derive): scores, loadings, shares, selection counts.
//
// The input table is never mutated; every derived table is fresh.
func Analyze(std *dataset.Standardized, be eigen.Backend, opts Options) (*Result, error) {
	if std == nil || be == nil {
		return nil, fmt.Errorf("Analyze: %w", ErrNoData)
	}
	if opts.VarianceTarget <= 0 || opts.VarianceTarget > 1 {
		return nil, fmt.Errorf("Analyze: variance target %g outside (0,1]: %w", opts.VarianceTarget, ErrNoData)
	}
	if opts.SymmetryTol <= 0 {
		opts.SymmetryTol = DefaultOptions().SymmetryTol
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	n, p := std.Rows(), std.Vars()
	X := std.Data()

	// Σ = XᵀX/(n−1). X is z-scored, so this is the correlation matrix.
	Xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	G, err := matrix.Mul(Xt, X)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	corr, err := matrix.Scale(G, 1.0/float64(n-1))
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	if err = matrix.ValidateSymmetric(corr, opts.SymmetryTol); err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	rankDeficient := p > n-1
	if rankDeficient {
		logger.Warn("correlation matrix is rank deficient, trailing eigenvalues will be near zero",
			"variables", p, "rows", n)
	}

	vals, vecs, err := be.SymDecompose(corr)
	if err != nil {
		return nil, fmt.Errorf("Analyze: backend %s: %w", be.Name(), err)
	}
	for k, v := range vals {
		if v < 0 {
			if v < -negClampTol {
				return nil, fmt.Errorf("Analyze: backend %s: λ[%d]=%g: %w", be.Name(), k, v, ErrNegativeEigenvalue)
			}
			vals[k] = 0
		}
	}

	scores, err := matrix.Mul(X, vecs)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	// ℓ_jk = v_jk·√λ_k: scale eigenvector columns by √λ.
	roots := make([]float64, p)
	for k := 0; k < p; k++ {
		roots[k] = math.Sqrt(vals[k])
	}
	loadings, err := matrix.ScaleCols(vecs, roots)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	var total float64
	for _, v := range vals {
		total += v
	}
	share := make([]float64, p)
	cum := make([]float64, p)
	var running float64
	kaiser, target := 0, 0
	for k := 0; k < p; k++ {
		if total > 0 {
			share[k] = vals[k] / total * 100
		}
		running += share[k]
		cum[k] = running
		if vals[k] > 1 {
			kaiser++
		}
		if target == 0 && running >= opts.VarianceTarget*100 {
			target = k + 1
		}
	}
	if target == 0 {
		target = p // threshold unreachable only through floating shortfall
	}

	return &Result{
		Variables:     std.Names(),
		Eigenvalues:   vals,
		Vectors:       vecs,
		Loadings:      loadings,
		Scores:        scores,
		SharePct:      share,
		CumulativePct: cum,
		KaiserK:       kaiser,
		TargetK:       target,
		RankDeficient: rankDeficient,
	}, nil
}

// Communalities returns h²_j = Σ_{k<K} ℓ²_jk for the first K components,
// one entry per variable. K must lie in [1, p].
func (r *Result) Communalities(K int) ([]float64, error) {
	p := len(r.Eigenvalues)
	if K < 1 || K > p {
		return nil, fmt.Errorf("Communalities: K=%d outside [1,%d]: %w", K, p, matrix.ErrOutOfRange)
	}

	out := make([]float64, p)
	var j, k int
	var l float64
	for j = 0; j < p; j++ {
		for k = 0; k < K; k++ {
			l, _ = r.Loadings.At(j, k)
			out[j] += l * l
		}
	}

	return out, nil
}

// EigenRow is one line of the eigenvalue table consumed by reporting
// collaborators: {index, eigenvalue, variance %, cumulative %}.
type EigenRow struct {
	Component     int // 1-based, matching the reporting convention
	Eigenvalue    float64
	SharePct      float64
	CumulativePct float64
}

// EigenTable materializes the ordered eigenvalue rows. Values are the
// engine's unrounded figures; rounding is the output boundary's concern.
func (r *Result) EigenTable() []EigenRow {
	rows := make([]EigenRow, len(r.Eigenvalues))
	for k := range r.Eigenvalues {
		rows[k] = EigenRow{
			Component:     k + 1,
			Eigenvalue:    r.Eigenvalues[k],
			SharePct:      r.SharePct[k],
			CumulativePct: r.CumulativePct[k],
		}
	}

	return rows
}
