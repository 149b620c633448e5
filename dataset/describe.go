// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/matrix"
)

// Summary holds the descriptive statistics of one variable.
// CV is the coefficient of variation in percent (std/mean·100); it is 0
// when the mean is exactly zero, where the ratio is undefined.
type Summary struct {
	Name string
	Mean float64
	Std  float64 // sample (n−1) standard deviation
	Min  float64
	Max  float64
	CV   float64
}

// Describe computes per-variable summaries in header order.
// Requires n >= 2 for the sample std. Complexity: O(n·p).
func Describe(t *Table) ([]Summary, error) {
	if t == nil {
		return nil, fmt.Errorf("Describe: %w", ErrNoVariables)
	}
	if t.Rows() < 2 {
		return nil, fmt.Errorf("Describe: n=%d: %w", t.Rows(), ErrInsufficientRows)
	}

	stds, means, err := matrix.ColumnStds(t.data)
	if err != nil {
		return nil, fmt.Errorf("Describe: %w", err)
	}

	out := make([]Summary, t.Vars())
	var i, j int
	var v float64
	for j = 0; j < t.Vars(); j++ {
		sum := Summary{Name: t.names[j], Mean: means[j], Std: stds[j]}
		for i = 0; i < t.Rows(); i++ {
			v, err = t.data.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("Describe: %w", err)
			}
			if i == 0 || v < sum.Min {
				sum.Min = v
			}
			if i == 0 || v > sum.Max {
				sum.Max = v
			}
		}
		if sum.Mean != 0 {
			sum.CV = sum.Std / sum.Mean * 100
		}
		out[j] = sum
	}

	return out, nil
}

// CorrelationMatrix returns the p×p Pearson correlation matrix of the raw
// table. Constant columns yield zero rows/columns (see matrix.Correlation);
// use Standardize when the strict abort policy is required instead.
func CorrelationMatrix(t *Table) (*matrix.Dense, error) {
	if t == nil {
		return nil, fmt.Errorf("CorrelationMatrix: %w", ErrNoVariables)
	}
	corr, _, _, err := matrix.Correlation(t.data)
	if err != nil {
		return nil, fmt.Errorf("CorrelationMatrix: %w", err)
	}

	return corr, nil
}
