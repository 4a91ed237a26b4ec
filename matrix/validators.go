// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Every kernel entry point goes through ValidateShape, so a zero-value
//    Dense (0x0) is rejected before any storage is read.

package matrix

import "fmt"

// maxAnalyticSize bounds the matrices accepted by Determinant and Inverse.
const maxAnalyticSize = 2

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is treated as nil as well.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m is non-nil and has at least one row and one column.
// The zero value of Dense (and any Matrix reporting a 0 dimension) fails here.
//
// Errors: ErrNilMatrix if nil, ErrInvalidShape if Rows() < 1 or Cols() < 1.
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf(fmt.Sprintf("ValidateShape: %dx%d", m.Rows(), m.Cols()), ErrInvalidShape)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape checks both operands with ValidateShape, then for
// equal shape. Use for Add/Sub and comparison helpers.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateShape(a); err != nil {
		return err
	}
	if err := ValidateShape(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m passes ValidateShape and is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrInvalidShape if empty, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateShape(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateAnalytic checks the preconditions of the closed-form operations
// (Determinant, Inverse): non-nil, non-empty, square, and at most 2x2.
// The order of checks fixes the error priority: ErrNilMatrix, ErrInvalidShape,
// ErrNonSquare, then ErrUnsupportedSize.
func ValidateAnalytic(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.Rows() > maxAnalyticSize {
		return validatorErrorf(fmt.Sprintf("ValidateAnalytic: %dx%d", m.Rows(), m.Cols()), ErrUnsupportedSize)
	}

	return nil
}

// ValidateMulCompatible checks both operands with ValidateShape and that
// a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateShape(a); err != nil {
		return err
	}
	if err := ValidateShape(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures two vectors have the same length.
// Time: O(1). Space: O(1).
func ValidateVecLen(x, y []float64) error {
	if len(x) != len(y) {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: %d != %d", len(x), len(y)), ErrDimensionMismatch)
	}

	return nil
}
