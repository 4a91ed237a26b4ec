// Package matrix offers a small dense-matrix arithmetic toolkit.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major matrix of float64 built from a grid (New),
//     or by the canonical builders Zeros and Identity.
//   - General-size algebra for any shape: Add, Sub, Negate, Scale/ScalarMul,
//     Transpose and Mul, each as a kernel over the read-only Matrix interface
//     and as a method on *Dense.
//   - Closed-form analytic operations: Trace for any square matrix,
//     Determinant and Inverse for 1x1 and 2x2 matrices only.
//   - Dot for equal-length vectors, and Equal/AllClose for comparisons.
//
// Every failure is reported through a sentinel error (ErrInvalidShape,
// ErrNonSquare, ErrUnsupportedSize, ErrDimensionMismatch, ErrOutOfRange,
// ErrSingular, ...) that callers match with errors.Is.
//
// Inverse refuses singular input with ErrSingular rather than producing
// infinities.
package matrix
