// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// operation context) and tests MUST check them via errors.Is. No fallible
// operation panics on user-triggered error conditions. The total methods
// Neg, Scale and T have no error result; they panic on a nil or zero-value
// *Dense receiver, with the wrapped ErrNilMatrix or ErrInvalidShape as the
// panic value.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy grepping.
// Kernels wrap with fmt.Errorf("<Op>: %w", ErrX) through matrixErrorf; callers
// still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> empty shape -> non-square -> unsupported size -> singular.
// Binary operations: nil operand -> dimension mismatch.

var (
	// ErrInvalidShape is returned when a grid is malformed at construction
	// (empty grid, empty first row, ragged rows), requested dimensions are < 1,
	// or an operand reports a 0 dimension (the zero value of Dense).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or Dot over
	// vectors of unequal length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsupportedSize marks Determinant/Inverse on matrices larger than 2x2.
	// Those operations are evaluated by closed-form formulas only.
	ErrUnsupportedSize = errors.New("matrix: operation not supported for matrices larger than 2x2")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion under WithValidateNaNInf,
	// AllClose tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
