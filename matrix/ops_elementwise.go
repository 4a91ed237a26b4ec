// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison helpers: exact Equal and tolerance-based AllClose.
//   - Keep all loops deterministic with a Dense fast path over flat buffers.

package matrix

import (
	"errors"
	"math"
)

// Equal reports whether a and b have the same shape and entries that compare
// equal with ==. NaN entries never compare equal; -0 equals +0.
// A nil operand is equal only to another nil operand; an empty (0x0) operand
// is equal to nothing.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func Equal(a, b Matrix) bool {
	errA, errB := ValidateShape(a), ValidateShape(b)
	if errA != nil || errB != nil {
		return errors.Is(errA, ErrNilMatrix) && errors.Is(errB, ErrNilMatrix)
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if da.data[idx] != db.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Non-finite tolerances are rejected with ErrNaNInf.
//
// Complexity: Time O(r*c). Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		// NaN on either side makes the comparison false, as intended.
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
