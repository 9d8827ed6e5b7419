// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Kernels return these sentinels wrapped with an operation tag
// (see matrixErrorf); tests and callers match them via errors.Is.
// No exported function panics on caller-supplied data.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/ragged -> dimension mismatch -> index -> overflow/inexact.

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a data slice of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates a [][]int64 literal whose rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrOverflow indicates that an exact int64 product or sum left the int64 range.
	ErrOverflow = errors.New("matrix: int64 overflow")

	// ErrInexact indicates a value that float64 cannot carry exactly
	// (|v| > 2^53 or a non-integral float result).
	ErrInexact = errors.New("matrix: value not exactly representable")
)
