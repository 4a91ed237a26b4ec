// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Closed-form analytic kernels: Determinant, Trace, Inverse.
//   - Determinant and Inverse are evaluated by direct formulas and are
//     restricted to 1x1 and 2x2 inputs; larger squares fail with
//     ErrUnsupportedSize. Trace works for any square size.
//
// Numeric policy:
//   - Inverse refuses a zero determinant with ErrSingular instead of
//     dividing by zero. The check is exact (det == 0); near-singular inputs
//     are inverted as-is.

package matrix

import "fmt"

// Determinant computes det(m) for a 1x1 or 2x2 matrix.
//
// Implementation:
//   - Stage 1: ValidateAnalytic(m) → nil / empty / non-square / size checks, in that order.
//   - Stage 2: 1x1 → m[0,0]; 2x2 → m[0,0]*m[1,1] - m[0,1]*m[1,0].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape, ErrNonSquare, ErrUnsupportedSize.
//
// Complexity:
//   - Time O(1), Space O(1) for *Dense; O(1) reads through At otherwise.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateAnalytic(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(d), nil
}

// det evaluates the closed form on a validated 1x1 or 2x2 Dense.
func det(d *Dense) float64 {
	if d.r == 1 {
		return d.data[0]
	}

	// Row-major 2x2: [a b; c d] → data = [a, b, c, d].
	return d.data[0]*d.data[3] - d.data[1]*d.data[2]
}

// Trace returns the sum of the diagonal entries of a square matrix of any size.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1).
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i] // stride n+1 walks the diagonal
		}

		return sum, nil
	}

	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		sum += v
	}

	return sum, nil
}

// Inverse computes m⁻¹ for a 1x1 or 2x2 matrix by the adjugate formula.
//
// Implementation:
//   - Stage 1: ValidateAnalytic(m); compute det; reject det == 0.
//   - Stage 2: 1x1 → [[1/det]];
//     2x2 → [[ m11/det, -m01/det], [-m10/det, m00/det]].
//
// Returns:
//   - *Dense of the same shape; the input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape, ErrNonSquare, ErrUnsupportedSize, ErrSingular.
//
// Complexity:
//   - Time O(1), Space O(1).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateAnalytic(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	dt := det(d)
	if dt == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("determinant is %g: %w", dt, ErrSingular))
	}

	inv := newDense(d.r, d.c)
	if d.r == 1 {
		inv.data[0] = 1 / dt

		return inv, nil
	}

	inv.data[0] = d.data[3] / dt
	inv.data[1] = -d.data[1] / dt
	inv.data[2] = -d.data[2] / dt
	inv.data[3] = d.data[0] / dt

	return inv, nil
}
