// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and fixtures.
package matrix

// Matrix is a read-only two-dimensional array of int64 values.
// Implementations must be immutable once constructed: kernels rely on it
// to treat inputs as pure values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)
}

// Multiplier computes C = A × B into a freshly allocated Dense.
// Mul and MulGonum both satisfy it.
type Multiplier func(a, b Matrix) (*Dense, error)
