// SPDX-License-Identifier: MIT
// Package matrix: exact integer multiplication kernel.
//
// Purpose:
//   - Compute C = A × B by the textbook definition over int64.
//   - Detect overflow on every multiply and every accumulation step, so a
//     reference result is either exact or an error, never a wrapped value.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul      = "Mul"
	opMulGonum = "MulGonum"
	opToGonum  = "ToGonum"
	opFromGon  = "FromGonum"
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum int64 = 0

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mulChecked returns x*y or ErrOverflow.
func mulChecked(x, y int64) (int64, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := x * y
	if p/y != x {
		return 0, ErrOverflow
	}

	return p, nil
}

// addChecked returns x+y or ErrOverflow.
func addChecked(x, y int64) (int64, error) {
	if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
		return 0, ErrOverflow
	}

	return x + y, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows)
//     before any allocation.
//   - Stage 2: If A and B are *Dense, walk the flat buffers directly;
//     otherwise read through At. Both paths use the fixed i→j→k order so
//     overflow is reported at the same cell regardless of operand type.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOverflow (with the failing cell).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, nil)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		av, bv, pv int64
		sum        int64
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	fast := okA && okB

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = ZeroSum
			for k = 0; k < aCols; k++ {
				if fast {
					av = da.data[i*aCols+k]
					bv = db.data[k*bCols+j]
				} else {
					if av, err = a.At(i, k); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
					if bv, err = b.At(k, j); err != nil {
						return nil, matrixErrorf(opMul, err)
					}
				}
				if pv, err = mulChecked(av, bv); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("C[%d][%d] term %d: %w", i, j, k, err))
				}
				if sum, err = addChecked(sum, pv); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("C[%d][%d] term %d: %w", i, j, k, err))
				}
			}
			res.data[i*bCols+j] = sum
		}
	}

	return res, nil
}

// compile-time check that Mul satisfies Multiplier.
var _ Multiplier = Mul
