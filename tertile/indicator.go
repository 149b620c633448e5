// SPDX-License-Identifier: MIT

package tertile

import (
	"fmt"

	"github.com/katalvlaran/eigenkit/matrix"
)

// Indicator is the binary expansion of a categorical Table: one column
// per (variable, level) pair in variable-major, level-minor order.
// Every row carries exactly one 1 per variable, so each row sums to Q.
type Indicator struct {
	Labels []string      // K labels, "variable=Level"
	Counts []int         // marginal count per category (column sums)
	Q      int           // number of discretized variables
	Z      *matrix.Dense // n×K binary matrix
}

// Indicator builds the one-hot encoding of ct.
// Stage 1 (Label): K = Q·LevelCount columns labelled "name=Low|Medium|High".
// Stage 2 (Fill): deterministic i→j pass setting Z[i, j·3+level] = 1 and
// accumulating the marginal counts.
// Complexity: O(n·K) time and space.
func (ct *Table) Indicator() (*Indicator, error) {
	n, q := ct.Rows(), ct.Vars()
	k := q * LevelCount

	z, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("Indicator: %w", err)
	}

	labels := make([]string, k)
	var j int
	var lvl Level
	for j = 0; j < q; j++ {
		for lvl = Low; lvl <= High; lvl++ {
			labels[j*LevelCount+int(lvl)] = ct.names[j] + "=" + lvl.String()
		}
	}

	counts := make([]int, k)
	var i, col int
	for i = 0; i < n; i++ {
		for j = 0; j < q; j++ {
			col = j*LevelCount + int(ct.levels[i][j])
			// Set cannot fail after shape validation.
			_ = z.Set(i, col, 1)
			counts[col]++
		}
	}

	return &Indicator{Labels: labels, Counts: counts, Q: q, Z: z}, nil
}
