// Package matrix_test contains unit tests for constructors and *Dense facades.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/minimat/matrix"
	"github.com/stretchr/testify/require"
)

// TestZerosInvalidDimensions ensures Zeros rejects non-positive dimensions.
func TestZerosInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 1}, {0, 0}} {
		z, err := matrix.Zeros(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidShape, "Zeros(%d,%d)", dims[0], dims[1])
		require.Nil(t, z)
	}
}

// TestIdentity checks the diagonal pattern and the n >= 1 precondition.
func TestIdentity(t *testing.T) {
	for n := 1; n <= 4; n++ {
		id, err := matrix.Identity(n)
		require.NoError(t, err)
		require.True(t, id.IsSquare())
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				require.Equal(t, want, MustAt(t, id, i, j))
			}
		}
	}

	_, err := matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

// TestIdentityInstancesAreIndependent ensures builders never share buffers.
func TestIdentityInstancesAreIndependent(t *testing.T) {
	a, err := matrix.Identity(2)
	require.NoError(t, err)
	b, err := matrix.Identity(2)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 2}}, sum.RawGrid())
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, a.RawGrid())
}

func TestLikeBuilders(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z.RawGrid())

	_, err = matrix.IdentityLike(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	id, err := matrix.IdentityLike(MustNew(t, [][]float64{{9, 9}, {9, 9}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, id.RawGrid())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// requirePanicsIs runs f and asserts it panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v is not %v", err, target)
	}()
	f()
}

// TestNilReceiver checks that fallible methods report ErrNilMatrix and the
// total ones panic with it.
func TestNilReceiver(t *testing.T) {
	var m *matrix.Dense
	other := MustNew(t, [][]float64{{1}})

	_, err := m.Add(other)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Mul(other)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Inverse()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	requirePanicsIs(t, matrix.ErrNilMatrix, func() { m.T() })
	requirePanicsIs(t, matrix.ErrNilMatrix, func() { m.Neg() })
	requirePanicsIs(t, matrix.ErrNilMatrix, func() { m.Scale(2) })
}

// TestZeroValueReceiver checks that the zero value of Dense is rejected as an
// empty shape by every operation instead of reaching its empty storage.
func TestZeroValueReceiver(t *testing.T) {
	var m matrix.Dense
	other := MustNew(t, [][]float64{{1}})

	_, err := m.Add(other)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = other.Sub(&m)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = m.Mul(&m)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = m.Trace()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.ZerosLike(&m)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.AllClose(&m, &m, 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.False(t, matrix.Equal(&m, &m))
	require.False(t, matrix.Equal(&m, nil))

	requirePanicsIs(t, matrix.ErrInvalidShape, func() { m.T() })
	requirePanicsIs(t, matrix.ErrInvalidShape, func() { m.Neg() })
	requirePanicsIs(t, matrix.ErrInvalidShape, func() { m.Scale(2) })
}
