// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/eigenkit/matrix"
)

const (
	eigTol  = 1e-10
	eigIter = 200
)

func TestEigen_Diagonal(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		3, 0, 0,
		0, 1, 0,
		0, 0, 2,
	})
	vals, vecs, err := matrix.Eigen(m, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	sorted, _, err := matrix.SortEigenDesc(vals, vecs)
	if err != nil {
		t.Fatalf("SortEigenDesc: %v", err)
	}
	sliceClose(t, sorted, []float64{3, 2, 1}, 0, 1e-12)
}

func TestEigen_Known2x2(t *testing.T) {
	t.Parallel()

	// [[2,1],[1,2]] has eigenvalues 3 and 1.
	m := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, vecs, err := matrix.Eigen(m, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	vals, vecs, err = matrix.SortEigenDesc(vals, vecs)
	if err != nil {
		t.Fatalf("SortEigenDesc: %v", err)
	}
	sliceClose(t, vals, []float64{3, 1}, 0, 1e-9)

	// Leading eigenvector is ±(1,1)/√2.
	v0 := math.Abs(MustAt(t, vecs, 0, 0))
	v1 := math.Abs(MustAt(t, vecs, 1, 0))
	inv := 1.0 / math.Sqrt2
	if !closeTo(v0, inv, 0, 1e-9) || !closeTo(v1, inv, 0, 1e-9) {
		t.Fatalf("leading eigenvector: got (%g,%g) want ±(%g,%g)", v0, v1, inv, inv)
	}
}

func TestEigen_OrthonormalColumns(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 4, 4, []float64{
		4, 1, 0.5, 0,
		1, 3, 1, 0.25,
		0.5, 1, 2, 1,
		0, 0.25, 1, 1,
	})
	_, vecs, err := matrix.Eigen(m, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}

	// QᵀQ must be the identity within tight tolerance.
	qt, err := matrix.Transpose(vecs)
	if err != nil {
		t.Fatalf("Transpose: %v", err)
	}
	g, err := matrix.Mul(qt, vecs)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	var i, j int
	var want float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			if !closeTo(MustAt(t, g, i, j), want, 0, 1e-8) {
				t.Fatalf("QᵀQ(%d,%d)=%g want %g", i, j, MustAt(t, g, i, j), want)
			}
		}
	}
}

func TestEigen_TraceConserved(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		2, 0.5, 0.1,
		0.5, 1.5, 0.3,
		0.1, 0.3, 1,
	})
	vals, _, err := matrix.Eigen(m, eigTol, eigIter)
	if err != nil {
		t.Fatalf("Eigen: %v", err)
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	if !closeTo(sum, 4.5, 0, 1e-9) {
		t.Fatalf("trace: got %g want 4.5", sum)
	}
}

func TestEigen_RejectsAsymmetry(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	if _, _, err := matrix.Eigen(m, eigTol, eigIter); !errors.Is(err, matrix.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}

func TestEigen_RejectsNonSquare(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	if _, _, err := matrix.Eigen(m, eigTol, eigIter); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("want ErrNonSquare, got %v", err)
	}
}

func TestSortEigenDesc_StableOnTies(t *testing.T) {
	t.Parallel()

	vecs := NewFilledDense(t, 3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	vals, sortedVecs, err := matrix.SortEigenDesc([]float64{1, 2, 1}, vecs)
	if err != nil {
		t.Fatalf("SortEigenDesc: %v", err)
	}
	sliceClose(t, vals, []float64{2, 1, 1}, 0, 0)

	// The two tied pairs keep their original relative order: columns 0, 2.
	if MustAt(t, sortedVecs, 0, 1) != 1 || MustAt(t, sortedVecs, 2, 2) != 1 {
		t.Fatalf("tie order not stable:\n%v", sortedVecs)
	}
}
