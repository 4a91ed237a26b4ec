// SPDX-License-Identifier: MIT
// Package matrix — public API: constructors and *Dense method facades.
//
// Purpose:
//   - Canonical builders (Zeros, Identity and their *Like variants).
//   - Method forms of every kernel on *Dense, so callers can chain
//     a.Add(b), m.T(), m.Inverse() and so on.
//   - No logic duplication: each method delegates to the kernel of the
//     same name in impl_linear_algebra.go / impl_analytic.go.
//
// Go has no operator overloading; the named methods are the whole contract.
// The scalar-on-the-left form (2 * m) is ScalarMul(2, m).

package matrix

import "fmt"

const (
	ctxZeros    = "Zeros"
	ctxIdentity = "Identity"
)

// ---------- Constructors ----------

// Zeros returns a height×width matrix filled with 0.0.
//
// Errors:
//   - ErrInvalidShape when height < 1 or width < 1.
//
// Complexity: O(h*w) zero-init.
func Zeros(height, width int) (*Dense, error) {
	if height < 1 || width < 1 {
		return nil, matrixErrorf(ctxZeros, fmt.Errorf("%dx%d: %w", height, width, ErrInvalidShape))
	}

	return newDense(height, width), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Built as Zeros(n, n) with the diagonal written in place before returning;
// this is the only write a Dense sees after allocation.
//
// Errors:
//   - ErrInvalidShape when n < 1.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	id, err := Zeros(n, n)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.set(i, i, 1.0)
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return Zeros(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// ---------- Algebra (methods map 1:1 to kernels) ----------

// Add returns m + other. Fails with ErrDimensionMismatch on different shapes.
func (m *Dense) Add(other Matrix) (*Dense, error) { return Add(m, other) }

// Sub returns m - other, computed as m.Add(other.Neg()).
// Fails with ErrDimensionMismatch on different shapes.
func (m *Dense) Sub(other Matrix) (*Dense, error) { return Sub(m, other) }

// Mul returns the matrix product m × other.
// Fails with ErrDimensionMismatch when m.Cols() != other.Rows().
func (m *Dense) Mul(other Matrix) (*Dense, error) { return Mul(m, other) }

// Neg returns -m. It always succeeds on a matrix built by New, Zeros or
// Identity; a nil or zero-value receiver panics.
func (m *Dense) Neg() *Dense { return mustDense(Negate(m)) }

// Scale returns alpha * m. It always succeeds on a matrix built by New, Zeros
// or Identity; a nil or zero-value receiver panics.
func (m *Dense) Scale(alpha float64) *Dense { return mustDense(Scale(m, alpha)) }

// T returns the transpose of m, shape Cols()×Rows().
// It always succeeds on a matrix built by New, Zeros or Identity; a nil or
// zero-value receiver panics.
func (m *Dense) T() *Dense { return mustDense(Transpose(m)) }

// Determinant returns det(m) for 1x1 and 2x2 matrices.
// Errors: ErrNonSquare, ErrUnsupportedSize.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// Trace returns the sum of the diagonal. Errors: ErrNonSquare.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// Inverse returns m⁻¹ for 1x1 and 2x2 matrices.
// Errors: ErrNonSquare, ErrUnsupportedSize, ErrSingular.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }

// mustDense backs the total methods (Neg, Scale, T). Their kernels fail only
// on a nil or zero-value receiver; that error becomes the panic value, so
// recover() yields ErrNilMatrix or ErrInvalidShape for errors.Is.
func mustDense(d *Dense, err error) *Dense {
	if err != nil {
		panic(err)
	}

	return d
}
