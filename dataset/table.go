// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigenkit/matrix"
)

// Table is an immutable observation table: an ordered sequence of rows
// (one per period) over p named real-valued variables. Row count and
// variable count are fixed for the table's lifetime; every entry is
// finite by construction.
type Table struct {
	names []string
	index map[string]int
	data  *matrix.Dense
}

// New builds a Table from a header and row-major observations.
//
// Stage 1 (Validate header): at least one name, all names unique.
// Stage 2 (Validate rows): at least one row, every row exactly p wide
// (ErrRaggedRow), every entry finite (ErrMissingValue with the row index
// and variable name — incomplete data is a precondition failure, never
// silently patched).
// Stage 3 (Copy): values are copied into a fresh Dense; the caller keeps
// ownership of the input slices.
//
// Complexity: O(n·p).
func New(names []string, rows [][]float64) (*Table, error) {
	if len(names) == 0 || len(rows) == 0 {
		return nil, ErrNoVariables
	}

	p := len(names)
	index := make(map[string]int, p)
	for j, name := range names {
		if name == "" {
			return nil, fmt.Errorf("New: column %d: %w", j, ErrNoVariables)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("New: %q: %w", name, ErrDuplicateVariable)
		}
		index[name] = j
	}

	data, err := matrix.NewDense(len(rows), p)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	var i, j int
	var v float64
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != p {
			return nil, fmt.Errorf("New: row %d has %d values, want %d: %w", i, len(rows[i]), p, ErrRaggedRow)
		}
		for j = 0; j < p; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("New: row %d variable %q: %w", i, names[j], ErrMissingValue)
			}
			// Set cannot fail after shape validation.
			_ = data.Set(i, j, v)
		}
	}

	return &Table{names: cloneNames(names), index: index, data: data}, nil
}

// Rows returns the observation count n. Complexity: O(1).
func (t *Table) Rows() int { return t.data.Rows() }

// Vars returns the variable count p. Complexity: O(1).
func (t *Table) Vars() int { return t.data.Cols() }

// Names returns a copy of the ordered variable names.
func (t *Table) Names() []string { return cloneNames(t.names) }

// Data returns a deep copy of the underlying n×p matrix; the table itself
// stays immutable. Complexity: O(n·p).
func (t *Table) Data() *matrix.Dense { return t.data.Clone() }

// Column extracts the named variable as a fresh slice of length n.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownVariable)
	}

	return t.data.Col(j)
}

// Drop returns a new Table without the named columns (the remedy for a
// DegenerateVariance failure). Order of surviving columns is preserved.
func (t *Table) Drop(names ...string) (*Table, error) {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := t.index[name]; !ok {
			return nil, fmt.Errorf("Drop: %q: %w", name, ErrUnknownVariable)
		}
		drop[name] = true
	}

	keep := make([]int, 0, t.Vars())
	keptNames := make([]string, 0, t.Vars())
	for j, name := range t.names {
		if !drop[name] {
			keep = append(keep, j)
			keptNames = append(keptNames, name)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("Drop: all columns removed: %w", ErrNoVariables)
	}

	rows := make([][]float64, t.Rows())
	var i, k int
	for i = 0; i < t.Rows(); i++ {
		rows[i] = make([]float64, len(keep))
		for k = 0; k < len(keep); k++ {
			v, err := t.data.At(i, keep[k])
			if err != nil {
				return nil, fmt.Errorf("Drop: %w", err)
			}
			rows[i][k] = v
		}
	}

	return New(keptNames, rows)
}

func cloneNames(names []string) []string {
	cp := make([]string, len(names))
	copy(cp, names)

	return cp
}
