// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and negation, scalar scaling, transpose
// and matrix multiplication. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical general-size kernels; *Dense methods in api.go delegate here.
//   - Operation tags and the shared error wrapper for uniform reporting.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other Matrix
//     implementations go through At in fixed i→j order.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial value for accumulations (trace, products).
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNegate      = "Negate"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDot         = "Dot"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opInverse     = "Inverse"
	opAllClose    = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. The caller must have validated m with ValidateShape.
//
// Complexity:
//   - O(1) for *Dense; Time O(r*c), Space O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	out := newDense(rows, cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// Dot returns the dot product Σ a[i]*b[i] of two equal-length vectors.
// Inputs are not modified; empty vectors yield 0.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	return floats.Dot(a, b), nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, add the flat buffers with floats.AddTo;
//     otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols)

	// Fast path: *Dense with *Dense → one flat pass over both buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			floats.AddTo(res.data, da.data, db.data)

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + bv
		}
	}

	return res, nil
}

// Negate returns a new matrix with every entry multiplied by -1.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape.
func Negate(m Matrix) (*Dense, error) {
	res, err := Scale(m, -1)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B, defined as A + (-B).
// Shapes are checked before B is negated so a mismatch costs no allocation.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for -B plus O(r*c) for the result.
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	negB, err := Negate(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := Add(a, negB)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Input is validated with ValidateShape; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols)

	if dm, ok := m.(*Dense); ok {
		floats.ScaleTo(res.data, alpha, dm.data)

		return res, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// ScalarMul is the scalar-on-the-left form of Scale: alpha * m.
// Scalar multiplication commutes, so the result equals Scale(m, alpha).
func ScalarMul(alpha float64, m Matrix) (*Dense, error) {
	return Scale(m, alpha)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated with ValidateShape; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateShape(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat index mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Materialize A as *Dense and transpose B, so both operands
//     expose contiguous rows.
//   - Stage 3: C[i,j] = Dot(row i of A, row j of Bᵀ), i.e. row·column.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c + n*c) for C and Bᵀ.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, bt.r
	res := newDense(rows, cols)
	var i, j int
	var rowA []float64
	for i = 0; i < rows; i++ {
		rowA = da.data[i*inner : (i+1)*inner]
		for j = 0; j < cols; j++ {
			// Lengths are equal by construction (inner == b.Rows()).
			res.data[i*cols+j] = floats.Dot(rowA, bt.data[j*inner:(j+1)*inner])
		}
	}

	return res, nil
}
