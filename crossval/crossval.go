// SPDX-License-Identifier: MIT

package crossval

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/eigenkit/dataset"
	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/pca"
)

var (
	// ErrLengthMismatch indicates spectra of different lengths; they are
	// not comparable component-by-component.
	ErrLengthMismatch = errors.New("crossval: spectra differ in length")

	// ErrValidationMismatch indicates at least one component pair outside
	// the relative tolerance.
	ErrValidationMismatch = errors.New("crossval: backends disagree")
)

// DefaultTolerance is the relative disagreement allowed per component.
const DefaultTolerance = 1e-3

// Pair is one component's cross-backend comparison.
type Pair struct {
	Component int // 1-based, matching the reporting convention
	ValueA    float64
	ValueB    float64
	RelDiff   float64
	Mismatch  bool
}

// Report is the full comparison table plus the verdict inputs.
type Report struct {
	BackendA  string
	BackendB  string
	Tolerance float64
	Pairs     []Pair
}

// Mismatches returns the number of flagged components.
func (r *Report) Mismatches() int {
	var n int
	for _, p := range r.Pairs {
		if p.Mismatch {
			n++
		}
	}

	return n
}

// Passed reports whether every component agreed within tolerance.
func (r *Report) Passed() bool { return r.Mismatches() == 0 }

// Err returns nil on agreement, or ErrValidationMismatch naming the
// flagged components.
func (r *Report) Err() error {
	if r.Passed() {
		return nil
	}

	bad := make([]int, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if p.Mismatch {
			bad = append(bad, p.Component)
		}
	}

	return fmt.Errorf("Err: %s vs %s: components %v beyond %g: %w",
		r.BackendA, r.BackendB, bad, r.Tolerance, ErrValidationMismatch)
}

// RelDiff computes |a−b|/|a|. Both values exactly zero agree perfectly;
// a zero reference against a nonzero candidate is infinite disagreement.
func RelDiff(a, b float64) float64 {
	if a == 0 {
		if b == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return math.Abs(a-b) / math.Abs(a)
}

// Compare builds the pairwise report for two spectra. A non-positive
// tolerance falls back to DefaultTolerance. The backend names are
// caller-supplied labels for the report header.
func Compare(nameA, nameB string, a, b []float64, tol float64) (*Report, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Compare: %d vs %d values: %w", len(a), len(b), ErrLengthMismatch)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}

	pairs := make([]Pair, len(a))
	var d float64
	for k := range a {
		d = RelDiff(a[k], b[k])
		pairs[k] = Pair{
			Component: k + 1,
			ValueA:    a[k],
			ValueB:    b[k],
			RelDiff:   d,
			Mismatch:  d > tol,
		}
	}

	return &Report{BackendA: nameA, BackendB: nameB, Tolerance: tol, Pairs: pairs}, nil
}

// Run decomposes one symmetric matrix through both backends and compares
// the spectra. Backend failures surface as-is; the report never mixes a
// failed decomposition with a successful one.
func Run(m *matrix.Dense, a, b eigen.Backend, tol float64) (*Report, error) {
	if m == nil || a == nil || b == nil {
		return nil, fmt.Errorf("Run: %w", matrix.ErrNilMatrix)
	}

	valsA, _, err := a.SymDecompose(m)
	if err != nil {
		return nil, fmt.Errorf("Run: backend %s: %w", a.Name(), err)
	}
	valsB, _, err := b.SymDecompose(m)
	if err != nil {
		return nil, fmt.Errorf("Run: backend %s: %w", b.Name(), err)
	}

	rep, err := Compare(a.Name(), b.Name(), valsA, valsB, tol)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return rep, nil
}

// RunPCA executes the full linear factor engine once per backend over the
// same standardized table and compares the resulting spectra. Each run
// owns its own derived tables; nothing is shared past the input.
func RunPCA(std *dataset.Standardized, a, b eigen.Backend, opts pca.Options, tol float64) (*Report, error) {
	resA, err := pca.Analyze(std, a, opts)
	if err != nil {
		return nil, fmt.Errorf("RunPCA: %w", err)
	}
	resB, err := pca.Analyze(std, b, opts)
	if err != nil {
		return nil, fmt.Errorf("RunPCA: %w", err)
	}

	rep, err := Compare(a.Name(), b.Name(), resA.Eigenvalues, resB.Eigenvalues, tol)
	if err != nil {
		return nil, fmt.Errorf("RunPCA: %w", err)
	}

	return rep, nil
}
