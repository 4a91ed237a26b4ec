// Package minimat is a small dense-matrix arithmetic library.
//
// Everything lives in the matrix subpackage:
//
//	matrix/   — Dense type, Zeros/Identity builders, Add/Sub/Negate/Scale,
//	            Transpose, Mul, Dot, Trace, and closed-form Determinant and
//	            Inverse for 1x1 and 2x2 matrices
//	examples/ — a runnable walkthrough (linear system, rotation check)
//
// Quick example:
//
//	m, _ := matrix.New([][]float64{{1, 2}, {3, 4}})
//	inv, _ := m.Inverse() // [[-2 1] [1.5 -0.5]]
//	id, _ := m.Mul(inv)   // identity
//
//	go get github.com/katalvlaran/minimat/matrix
package minimat
