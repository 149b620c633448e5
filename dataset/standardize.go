// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/eigenkit/matrix"
)

// Standardized is the z-scored view of a Table: every column has mean 0
// and sample standard deviation 1 (n−1 divisor). It is recomputed from
// scratch on each Standardize call and never mutated afterwards.
type Standardized struct {
	names []string
	z     *matrix.Dense
	means []float64
	stds  []float64
}

// Standardize z-scores every column of t.
//
// Stage 1 (Validate): n >= 2 (ErrInsufficientRows — a single row has no
// sample variance).
// Stage 2 (Moments): column means and sample stds in one deterministic pass.
// Stage 3 (Guard): any column with std == 0 aborts with
// ErrDegenerateVariance naming every offending column — the caller may
// Drop them and retry; the column is never silently zeroed.
// Stage 4 (Transform): Z = (X − mean)·diag(1/std).
//
// Complexity: O(n·p).
func Standardize(t *Table) (*Standardized, error) {
	if t == nil {
		return nil, fmt.Errorf("Standardize: %w", ErrNoVariables)
	}
	if t.Rows() < 2 {
		return nil, fmt.Errorf("Standardize: n=%d: %w", t.Rows(), ErrInsufficientRows)
	}

	stds, means, err := matrix.ColumnStds(t.data)
	if err != nil {
		return nil, fmt.Errorf("Standardize: %w", err)
	}

	var degenerate []string
	for j, s := range stds {
		if s == 0 {
			degenerate = append(degenerate, t.names[j])
		}
	}
	if len(degenerate) > 0 {
		return nil, fmt.Errorf("Standardize: columns [%s]: %w",
			strings.Join(degenerate, ", "), ErrDegenerateVariance)
	}

	centered, _, err := matrix.CenterColumns(t.data)
	if err != nil {
		return nil, fmt.Errorf("Standardize: %w", err)
	}
	invStd := make([]float64, len(stds))
	for j, s := range stds {
		invStd[j] = 1.0 / s
	}
	z, err := matrix.ScaleCols(centered, invStd)
	if err != nil {
		return nil, fmt.Errorf("Standardize: %w", err)
	}

	return &Standardized{
		names: t.Names(),
		z:     z,
		means: means,
		stds:  stds,
	}, nil
}

// Rows returns the observation count n.
func (s *Standardized) Rows() int { return s.z.Rows() }

// Vars returns the variable count p.
func (s *Standardized) Vars() int { return s.z.Cols() }

// Names returns a copy of the ordered variable names.
func (s *Standardized) Names() []string { return cloneNames(s.names) }

// Data returns a deep copy of the n×p z-scored matrix.
func (s *Standardized) Data() *matrix.Dense { return s.z.Clone() }

// Means returns a copy of the column means removed during standardization.
func (s *Standardized) Means() []float64 {
	cp := make([]float64, len(s.means))
	copy(cp, s.means)

	return cp
}

// Stds returns a copy of the sample standard deviations divided out.
func (s *Standardized) Stds() []float64 {
	cp := make([]float64, len(s.stds))
	copy(cp, s.stds)

	return cp
}

// Restore reverses the transform (multiply by std, add mean), reproducing
// the source columns within floating tolerance. Complexity: O(n·p).
func (s *Standardized) Restore() (*matrix.Dense, error) {
	scaled, err := matrix.ScaleCols(s.z, s.stds)
	if err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	out, err := matrix.NewDense(scaled.Rows(), scaled.Cols())
	if err != nil {
		return nil, fmt.Errorf("Restore: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < scaled.Rows(); i++ {
		for j = 0; j < scaled.Cols(); j++ {
			v, err = scaled.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Restore: %w", err)
			}
			if err = out.Set(i, j, v+s.means[j]); err != nil {
				return nil, fmt.Errorf("Restore: %w", err)
			}
		}
	}

	return out, nil
}
