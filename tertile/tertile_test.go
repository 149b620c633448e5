// SPDX-License-Identifier: MIT

package tertile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigenkit/dataset"
	"github.com/katalvlaran/eigenkit/tertile"
)

func TestQuantile_LinearInterpolation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	q33, err := tertile.Quantile(xs, 1.0/3.0)
	require.NoError(t, err)
	assert.InDelta(t, 3.6666666667, q33, 1e-9, "h=(9−1)/3 interpolates between 3 and 4")

	q67, err := tertile.Quantile(xs, 2.0/3.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.3333333333, q67, 1e-9)

	q0, err := tertile.Quantile(xs, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q0)

	q1, err := tertile.Quantile(xs, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, q1)

	_, err = tertile.Quantile(xs, 1.5)
	assert.ErrorIs(t, err, tertile.ErrBadProbability)

	_, err = tertile.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, tertile.ErrInsufficientData)
}

// TestCuts_BalancedNineValues: discretizing [1..9] into tertiles yields
// exactly 3 Low, 3 Medium and 3 High labels.
func TestCuts_BalancedNineValues(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	cuts, err := tertile.Cuts(xs)
	require.NoError(t, err)

	var low, med, high int
	for _, v := range xs {
		switch cuts.Level(v) {
		case tertile.Low:
			low++
		case tertile.Medium:
			med++
		case tertile.High:
			high++
		}
	}
	assert.Equal(t, 3, low)
	assert.Equal(t, 3, med)
	assert.Equal(t, 3, high)
}

// TestCutPoints_LowerInclusiveBoundary: values exactly on a cut point
// fall into the lower-indexed band.
func TestCutPoints_LowerInclusiveBoundary(t *testing.T) {
	cuts := tertile.CutPoints{Q33: 1, Q67: 2}

	assert.Equal(t, tertile.Low, cuts.Level(1), "x == Q33 is Low")
	assert.Equal(t, tertile.Medium, cuts.Level(1.5))
	assert.Equal(t, tertile.Medium, cuts.Level(2), "x == Q67 is Medium")
	assert.Equal(t, tertile.High, cuts.Level(2.0001))
}

func TestCuts_InsufficientData(t *testing.T) {
	_, err := tertile.Cuts([]float64{1, 2})
	assert.ErrorIs(t, err, tertile.ErrInsufficientData)
}

// TestDiscretize_Idempotent: re-discretizing the originating column with
// the same cut points reproduces identical labels.
func TestDiscretize_Idempotent(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"x"},
		[][]float64{{3}, {1}, {4}, {1}, {5}, {9}, {2}, {6}, {5}},
	)
	require.NoError(t, err)

	ct, err := tertile.Discretize(tbl)
	require.NoError(t, err)

	col, err := tbl.Column("x")
	require.NoError(t, err)
	cuts := ct.Cut(0)
	for i, v := range col {
		assert.Equal(t, ct.LevelAt(i, 0), cuts.Level(v), "row %d", i)
	}
}

// TestDiscretize_PerVariableThresholds: each variable is banded by its
// own distribution, never by a shared threshold.
func TestDiscretize_PerVariableThresholds(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"small", "big"},
		[][]float64{
			{1, 100},
			{2, 200},
			{3, 300},
			{4, 400},
			{5, 500},
			{6, 600},
		},
	)
	require.NoError(t, err)

	ct, err := tertile.Discretize(tbl)
	require.NoError(t, err)
	assert.NotEqual(t, ct.Cut(0), ct.Cut(1))

	// Same rank structure gives the same labels despite different scales.
	for i := 0; i < ct.Rows(); i++ {
		assert.Equal(t, ct.LevelAt(i, 0), ct.LevelAt(i, 1), "row %d", i)
	}
}

func TestDiscretize_TooFewRows(t *testing.T) {
	tbl, err := dataset.New([]string{"x"}, [][]float64{{1}, {2}})
	require.NoError(t, err)

	_, err = tertile.Discretize(tbl)
	assert.ErrorIs(t, err, tertile.ErrInsufficientData)
}

func TestIndicator_RowSumsEqualQ(t *testing.T) {
	tbl, err := dataset.New(
		[]string{"a", "b"},
		[][]float64{
			{1, 9}, {2, 8}, {3, 7}, {4, 6}, {5, 5}, {6, 4}, {7, 3}, {8, 2}, {9, 1},
		},
	)
	require.NoError(t, err)

	ct, err := tertile.Discretize(tbl)
	require.NoError(t, err)
	ind, err := ct.Indicator()
	require.NoError(t, err)

	assert.Equal(t, 2, ind.Q)
	assert.Len(t, ind.Labels, 6)
	assert.Equal(t, "a=Low", ind.Labels[0])
	assert.Equal(t, "b=High", ind.Labels[5])

	// Row sums equal the number of discretized variables.
	for i := 0; i < ind.Z.Rows(); i++ {
		var sum float64
		for j := 0; j < ind.Z.Cols(); j++ {
			v, err := ind.Z.At(i, j)
			require.NoError(t, err)
			assert.Contains(t, []float64{0, 1}, v, "indicator entries are binary")
			sum += v
		}
		assert.Equal(t, 2.0, sum, "row %d", i)
	}

	// Column counts add up to n·Q.
	var total int
	for _, c := range ind.Counts {
		total += c
	}
	assert.Equal(t, 18, total)
}
