// SPDX-License-Identifier: MIT

package crossval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigenkit/crossval"
	"github.com/katalvlaran/eigenkit/dataset"
	"github.com/katalvlaran/eigenkit/eigen"
	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/pca"
)

// TestCompare_NearMissesPass: differences below one part in a thousand
// never flag.
func TestCompare_NearMissesPass(t *testing.T) {
	a := []float64{4, 2, 1}
	b := []float64{4.001, 1.999, 1.0}

	rep, err := crossval.Compare("jacobi", "gonum", a, b, crossval.DefaultTolerance)
	require.NoError(t, err)

	assert.True(t, rep.Passed())
	assert.Equal(t, 0, rep.Mismatches())
	assert.NoError(t, rep.Err())
	require.Len(t, rep.Pairs, 3)
	assert.Equal(t, 1, rep.Pairs[0].Component)
	assert.InDelta(t, 0.001/4, rep.Pairs[0].RelDiff, 1e-12)
}

func TestCompare_FlagsDivergentComponent(t *testing.T) {
	a := []float64{4, 2, 1}
	b := []float64{4, 2.5, 1}

	rep, err := crossval.Compare("jacobi", "gonum", a, b, 1e-3)
	require.NoError(t, err)

	assert.False(t, rep.Passed())
	assert.Equal(t, 1, rep.Mismatches())
	assert.True(t, rep.Pairs[1].Mismatch)
	assert.False(t, rep.Pairs[0].Mismatch)

	err = rep.Err()
	require.ErrorIs(t, err, crossval.ErrValidationMismatch)
	assert.Contains(t, err.Error(), "[2]")
}

func TestCompare_LengthMismatch(t *testing.T) {
	_, err := crossval.Compare("a", "b", []float64{1, 2}, []float64{1}, 1e-3)
	assert.ErrorIs(t, err, crossval.ErrLengthMismatch)
}

// TestRelDiff_ZeroRules: both zero agrees, zero reference against a
// nonzero candidate is infinite.
func TestRelDiff_ZeroRules(t *testing.T) {
	assert.Equal(t, 0.0, crossval.RelDiff(0, 0))
	assert.True(t, math.IsInf(crossval.RelDiff(0, 1e-15), 1))
	assert.InDelta(t, 0.5, crossval.RelDiff(2, 1), 1e-12)
}

// TestCompare_DefaultToleranceFallback: a non-positive tolerance uses
// the documented default.
func TestCompare_DefaultToleranceFallback(t *testing.T) {
	rep, err := crossval.Compare("a", "b", []float64{1}, []float64{1}, 0)
	require.NoError(t, err)
	assert.Equal(t, crossval.DefaultTolerance, rep.Tolerance)
}

// TestRun_BackendsAgreeOnSymmetricFixture: the two independent
// decompositions of one matrix pass cross-validation.
func TestRun_BackendsAgreeOnSymmetricFixture(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{4, 1, 0.5, 0.2},
		{1, 3, 0.8, 0.1},
		{0.5, 0.8, 2, 0.6},
		{0.2, 0.1, 0.6, 1},
	})
	require.NoError(t, err)

	rep, err := crossval.Run(m, eigen.NewJacobi(), eigen.NewGonum(), crossval.DefaultTolerance)
	require.NoError(t, err)

	assert.Equal(t, "jacobi", rep.BackendA)
	assert.Equal(t, "gonum", rep.BackendB)
	assert.True(t, rep.Passed(), "independent backends must agree on a well-conditioned matrix")
	require.Len(t, rep.Pairs, 4)
	for _, p := range rep.Pairs {
		assert.Less(t, p.RelDiff, 1e-6, "component %d", p.Component)
	}
}

// TestRun_RejectsAsymmetricInput: both backends refuse the same way, so
// Run surfaces the shared sentinel.
func TestRun_RejectsAsymmetricInput(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	_, err = crossval.Run(m, eigen.NewJacobi(), eigen.NewGonum(), 1e-3)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestRunPCA_FullEngineAgreement: the complete linear factor engine run
// per backend yields cross-validating spectra.
func TestRunPCA_FullEngineAgreement(t *testing.T) {
	const n = 20
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		ti := float64(i)
		rows[i] = []float64{
			ti,
			math.Sin(2 * math.Pi * ti / 5),
			(ti - 9.5) * (ti - 9.5),
		}
	}
	tbl, err := dataset.New([]string{"a", "b", "c"}, rows)
	require.NoError(t, err)
	std, err := dataset.Standardize(tbl)
	require.NoError(t, err)

	rep, err := crossval.RunPCA(std, eigen.NewJacobi(), eigen.NewGonum(),
		pca.DefaultOptions(), crossval.DefaultTolerance)
	require.NoError(t, err)

	require.Len(t, rep.Pairs, 3)
	assert.True(t, rep.Passed())
	assert.NoError(t, rep.Err())
}

func TestRun_NilInputs(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1}})
	require.NoError(t, err)

	_, err = crossval.Run(nil, eigen.NewJacobi(), eigen.NewGonum(), 1e-3)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = crossval.Run(m, nil, eigen.NewGonum(), 1e-3)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = crossval.Run(m, eigen.NewJacobi(), nil, 1e-3)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
