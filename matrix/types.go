// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix interface consumed by every kernel.
// Concrete storage lives in impl_dense.go; errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix is a read-only two-dimensional view of float64 values.
// Kernels accept Matrix and return freshly allocated *Dense results, so any
// implementation can take part in the algebra. There is deliberately no Set:
// matrices are immutable once built.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows (height) of the matrix.
	Rows() int

	// Cols returns the number of columns (width) of the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
