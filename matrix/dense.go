// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Stay immutable after construction; every constructor copies its input.
//
// Complexity quicksheet:
//   - NewDense/NewDenseFromRows/NewDenseFunc: O(r*c); At: O(1); Row: O(c); RawRows: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxRow  = "Row" // method tag used in error wrappers
	ctxNew  = "NewDense"
	ctxRows = "NewDenseFromRows"
	ctxFunc = "NewDenseFunc"
)

// MaxElements caps rows*cols for a single Dense (2^40 cells, 8 TiB of int64).
// Larger requests fail with ErrInvalidDimensions instead of reaching make.
const MaxElements int64 = 1 << 40

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major int64 matrix.
//   - r,c hold dimensions (rows, cols); zero is allowed.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>= 0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix from a row-major data slice.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and rows*cols <= MaxElements
//     without overflowing int; else ErrInvalidDimensions.
//   - Stage 2: nil data means zero fill; otherwise len(data) must equal rows*cols.
//   - Stage 3: copy data so the caller cannot mutate the result afterwards.
//
// Errors:
//   - ErrInvalidDimensions (negative shape, or rows*cols too large).
//   - ErrDimensionMismatch (len(data) != rows*cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, data []int64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(ctxNew, ErrInvalidDimensions)
	}
	if rows != 0 && (cols > math.MaxInt/rows || int64(rows*cols) > MaxElements) {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	buf := make([]int64, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, matrixErrorf(ctxNew, fmt.Errorf("len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch))
		}
		copy(buf, data)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a Dense from a [][]int64 literal.
// An empty outer slice yields a 0×0 matrix. All rows must share one length.
//
// Errors:
//   - ErrRagged when any row length differs from the first.
func NewDenseFromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	buf := make([]int64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxRows, fmt.Errorf("row %d has %d cols, want %d: %w", i, len(row), c, ErrRagged))
		}
		buf = append(buf, row...)
	}

	return &Dense{r: r, c: c, data: buf}, nil
}

// NewDenseFunc builds an r×c matrix whose cell (i, j) is fn(i, j).
// fn is evaluated exactly once per cell in row-major order.
func NewDenseFunc(rows, cols int, fn func(i, j int) int64) (*Dense, error) {
	if fn == nil {
		return nil, matrixErrorf(ctxFunc, ErrNilMatrix)
	}
	m, err := NewDense(rows, cols, nil)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = fn(i, j)
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRows returns a deep copy of the matrix as a slice of rows.
func (m *Dense) RawRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = append([]int64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Equal reports whether o has the same shape and the same cells as m.
// A nil o is never equal.
func (m *Dense) Equal(o Matrix) bool {
	if isNil(o) || m.r != o.Rows() || m.c != o.Cols() {
		return false
	}
	if od, ok := o.(*Dense); ok {
		for k := range m.data {
			if m.data[k] != od.data[k] {
				return false
			}
		}
		return true
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := o.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
