// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Bridge Dense values into gonum/mat so results can be checked against an
//     independent implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/minimat/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the generic (non-*Dense) kernel paths.
type hide struct{ matrix.Matrix }

// MustNew builds a *Dense from a grid or fails the test.
func MustNew(t testing.TB, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(grid)
	require.NoError(t, err, "New(%v)", grid)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandGrid returns an r×c grid of deterministic U(-1,1) values for the seed.
func RandGrid(r, c int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = make([]float64, c)
		for j := range grid[i] {
			grid[i][j] = rng.Float64()*2 - 1 // 0*2-1=-1 || 1*2-1=1
		}
	}

	return grid
}

// RandDense returns a new r×c Dense filled with deterministic U(-1,1) values.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()

	return MustNew(t, RandGrid(r, c, seed))
}

// toGonum copies a Dense into a gonum *mat.Dense (row-major data).
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, row := range m.RawGrid() {
		data = append(data, row...)
	}

	return mat.NewDense(r, c, data)
}

// requireMatchesGonum asserts got has the shape of want and agrees within tol.
func requireMatchesGonum(t *testing.T, want mat.Matrix, got *matrix.Dense) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Shape()
	require.Equal(t, wr, gr, "rows")
	require.Equal(t, wc, gc, "cols")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), tol, "entry [%d,%d]", i, j)
		}
	}
}

// requireAllClose asserts AllClose(want, got) within tol.
func requireAllClose(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}
