// SPDX-License-Identifier: MIT

package tertile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/eigenkit/dataset"
)

var (
	// ErrInsufficientData indicates fewer than 3 observations: three
	// non-degenerate bands cannot be formed.
	ErrInsufficientData = errors.New("tertile: insufficient data for 3 bands")

	// ErrBadProbability indicates a quantile probability outside [0,1].
	ErrBadProbability = errors.New("tertile: probability outside [0,1]")
)

// Level is an ordinal tertile band.
type Level uint8

const (
	// Low is the band at or below the 33rd percentile.
	Low Level = iota
	// Medium is the band between the 33rd (exclusive) and 67th (inclusive) percentile.
	Medium
	// High is the band above the 67th percentile.
	High

	// LevelCount is the number of bands per variable.
	LevelCount = 3
)

// String returns the band name.
func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Quantile computes the p-quantile of xs using linear interpolation
// between order statistics: h = (n−1)·p, q = x_(⌊h⌋) + frac·(x_(⌊h⌋+1) − x_(⌊h⌋)).
// The input is copied and sorted; xs is never mutated.
// Complexity: O(n·log n).
func Quantile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrInsufficientData
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("Quantile(%g): %w", p, ErrBadProbability)
	}

	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	h := float64(len(sorted)-1) * p
	lo := int(h)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1], nil
	}

	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo]), nil
}

// CutPoints holds the two tertile thresholds of one variable.
type CutPoints struct {
	Q33 float64
	Q67 float64
}

// Cuts computes the tertile cut points of one column.
// Fails with ErrInsufficientData when n < 3.
func Cuts(xs []float64) (CutPoints, error) {
	if len(xs) < LevelCount {
		return CutPoints{}, fmt.Errorf("Cuts: n=%d: %w", len(xs), ErrInsufficientData)
	}
	q33, err := Quantile(xs, 1.0/3.0)
	if err != nil {
		return CutPoints{}, fmt.Errorf("Cuts: %w", err)
	}
	q67, err := Quantile(xs, 2.0/3.0)
	if err != nil {
		return CutPoints{}, fmt.Errorf("Cuts: %w", err)
	}

	return CutPoints{Q33: q33, Q67: q67}, nil
}

// Level assigns the band for value v. Boundary values fall into the
// lower-indexed band: v ≤ Q33 → Low, v ≤ Q67 → Medium, otherwise High.
func (c CutPoints) Level(v float64) Level {
	switch {
	case v <= c.Q33:
		return Low
	case v <= c.Q67:
		return Medium
	default:
		return High
	}
}

// Table is the categorical view of an observation table: one ordinal
// Level per (row, variable) cell, plus the per-variable cut points that
// produced it. Immutable after Discretize.
type Table struct {
	names  []string
	cuts   []CutPoints
	levels [][]Level // n rows × Q variables
}

// Discretize maps every column of t into its own tertile bands.
// Label assignment is a pure function of the column's own empirical
// distribution — thresholds are recomputed per variable, never shared.
// Complexity: O(Q·n·log n).
func Discretize(t *dataset.Table) (*Table, error) {
	if t == nil {
		return nil, fmt.Errorf("Discretize: %w", ErrInsufficientData)
	}
	if t.Rows() < LevelCount {
		return nil, fmt.Errorf("Discretize: n=%d: %w", t.Rows(), ErrInsufficientData)
	}

	names := t.Names()
	cuts := make([]CutPoints, len(names))
	levels := make([][]Level, t.Rows())
	for i := range levels {
		levels[i] = make([]Level, len(names))
	}

	var j, i int
	for j = 0; j < len(names); j++ {
		col, err := t.Column(names[j])
		if err != nil {
			return nil, fmt.Errorf("Discretize: %w", err)
		}
		cuts[j], err = Cuts(col)
		if err != nil {
			return nil, fmt.Errorf("Discretize: variable %q: %w", names[j], err)
		}
		for i = 0; i < len(col); i++ {
			levels[i][j] = cuts[j].Level(col[i])
		}
	}

	return &Table{names: names, cuts: cuts, levels: levels}, nil
}

// Rows returns the observation count n.
func (ct *Table) Rows() int { return len(ct.levels) }

// Vars returns the number of discretized variables Q.
func (ct *Table) Vars() int { return len(ct.names) }

// Names returns a copy of the ordered variable names.
func (ct *Table) Names() []string {
	cp := make([]string, len(ct.names))
	copy(cp, ct.names)

	return cp
}

// LevelAt returns the band of variable j in row i (bounds-unsafe access
// is a programmer error; indices come from Rows/Vars).
func (ct *Table) LevelAt(i, j int) Level { return ct.levels[i][j] }

// Cut returns the cut points of variable j.
func (ct *Table) Cut(j int) CutPoints { return ct.cuts[j] }
