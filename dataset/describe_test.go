// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigenkit/dataset"
)

func TestDescribe_KnownValues(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"x", "y"},
		[][]float64{
			{1, -1},
			{2, 0},
			{3, 1},
		},
	)
	require.NoError(t, err)

	sums, err := dataset.Describe(tbl)
	require.NoError(t, err)
	require.Len(t, sums, 2)

	x := sums[0]
	assert.Equal(t, "x", x.Name)
	assert.InDelta(t, 2, x.Mean, 1e-12)
	assert.InDelta(t, 1, x.Std, 1e-12)
	assert.Equal(t, 1.0, x.Min)
	assert.Equal(t, 3.0, x.Max)
	assert.InDelta(t, 50, x.CV, 1e-9, "CV = std/mean·100")

	y := sums[1]
	assert.InDelta(t, 0, y.Mean, 1e-12)
	assert.Equal(t, 0.0, y.CV, "CV undefined at zero mean reports 0")
}

func TestDescribe_TooFewRows(t *testing.T) {
	tbl, err := dataset.New([]string{"x"}, [][]float64{{1}})
	require.NoError(t, err)

	_, err = dataset.Describe(tbl)
	assert.ErrorIs(t, err, dataset.ErrInsufficientRows)
}

func TestCorrelationMatrix_PerfectPair(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"a", "b"},
		[][]float64{{1, 2}, {2, 4}, {3, 6}},
	)
	require.NoError(t, err)

	corr, err := dataset.CorrelationMatrix(tbl)
	require.NoError(t, err)

	v, err := corr.At(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, v, 1e-10, "perfectly linear pair correlates at 1")

	d, err := corr.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-10, "unit diagonal")
}
