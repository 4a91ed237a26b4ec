// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Row/Col return errors instead of panicking.
//   - Keep values immutable after construction: there is no exported mutator.
//   - Never alias caller memory: New copies the grid, Row/Col/RawGrid return copies.
//
// Complexity quicksheet:
//   - New: O(r*c) copy; At: O(1); Row: O(c); Col: O(r); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // ctor tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtSep      = " "
	_fmtRowClose = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (height, width); both are >= 1 for every value
//     built by New, Zeros or Identity.
//   - The zero value is an empty 0x0 matrix; operations reject it with
//     ErrInvalidShape.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>= 1)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New builds a Dense from a grid given as rows of values.
// MAIN DESCRIPTION:
//   - Public constructor; the grid is copied so later edits to the caller's
//     slices never leak into the matrix.
//
// Implementation:
//   - Stage 1: resolve options; reject empty grid or empty first row.
//   - Stage 2: height = len(grid), width = len(grid[0]); every row must match.
//   - Stage 3: copy rows into the flat buffer, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidShape (empty grid, empty first row, ragged rows).
//   - ErrNaNInf (non-finite entry while WithValidateNaNInf is in effect).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	if len(grid) == 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("empty grid: %w", ErrInvalidShape))
	}
	rows, cols := len(grid), len(grid[0])
	if cols == 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("empty row 0: %w", ErrInvalidShape))
	}

	m := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, matrixErrorf(ctxNew,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(grid[i]), cols, ErrInvalidShape))
		}
		for j = 0; j < cols; j++ {
			v := grid[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// newDense allocates a zero-filled r×c matrix. Callers guarantee r,c >= 1.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// Rows returns the row count (height).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count (width).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether height equals width.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the error carries the coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i, the slice form of m[i].
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange when j is outside [0, Cols()).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawGrid returns the entries as a freshly allocated slice of rows.
// Complexity: O(r*c).
func (m *Dense) RawGrid() [][]float64 {
	grid := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		grid[i] = make([]float64, m.c)
		copy(grid[i], m.data[i*m.c:(i+1)*m.c])
	}

	return grid
}

// Clone returns a deep copy (new buffer).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// set writes v at (row, col) without bounds checks.
// Only builders use it, on matrices they have just allocated.
func (m *Dense) set(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// String renders one line per row, entries formatted with %g and separated by
// a single space, each row terminated by a newline. Diagnostic only; the
// format is not meant to be parsed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
