// SPDX-License-Identifier: MIT
// Package matrix: bridge to gonum's dense float64 routines.
//
// Purpose:
//   - Run the same product through gonum.org/v1/gonum/mat so the native
//     integer kernel can be cross-checked against a standard library routine.
//   - Refuse any computation float64 cannot carry exactly: every operand and
//     every partial sum must stay within ±2^53.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxExactFloat is the largest magnitude below which every integer is
// exactly representable as float64 (2^53).
const MaxExactFloat = 1 << 53

// maxAbs returns the largest |v| over all cells of m.
func maxAbs(m Matrix) (float64, error) {
	var (
		best float64
		i, j int
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			if f := math.Abs(float64(v)); f > best {
				best = f
			}
		}
	}

	return best, nil
}

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input.
//   - ErrDimensionMismatch for zero-sized shapes (gonum cannot hold them).
//   - ErrInexact when some |v| > 2^53.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%dx%d: %w", r, c, ErrDimensionMismatch))
	}
	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			if v > MaxExactFloat || v < -MaxExactFloat {
				return nil, matrixErrorf(opToGonum, fmt.Errorf("[%d][%d]=%d: %w", i, j, v, ErrInexact))
			}
			data[i*c+j] = float64(v)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// FromGonum converts a gonum matrix back into an integer Dense.
// Every cell must be integral and within ±2^53. A nil or typed-nil g
// yields ErrNilMatrix.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if isNilValue(g) {
		return nil, matrixErrorf(opFromGon, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c, nil)
	if err != nil {
		return nil, matrixErrorf(opFromGon, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			f := g.At(i, j)
			if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > MaxExactFloat {
				return nil, matrixErrorf(opFromGon, fmt.Errorf("[%d][%d]=%g: %w", i, j, f, ErrInexact))
			}
			out.data[i*c+j] = int64(f)
		}
	}

	return out, nil
}

// MulGonum computes C = A × B with (*mat.Dense).Mul.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible, same sentinels as Mul.
//   - Stage 2: empty shapes short-circuit to a zero Dense (gonum panics on them).
//   - Stage 3: bound the largest possible partial sum by
//     maxAbs(A)·maxAbs(B)·inner; refuse with ErrInexact when it reaches 2^53.
//   - Stage 4: multiply in float64 and convert back via FromGonum.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*n + n*c + r*c) for the float copies.
func MulGonum(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()
	if r == 0 || n == 0 || c == 0 {
		res, err := NewDense(r, c, nil)
		if err != nil {
			return nil, matrixErrorf(opMulGonum, err)
		}
		return res, nil
	}

	ma, err := maxAbs(a)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	mb, err := maxAbs(b)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	if ma*mb*float64(n) >= MaxExactFloat {
		return nil, matrixErrorf(opMulGonum, fmt.Errorf("partial sums may reach %g: %w", ma*mb*float64(n), ErrInexact))
	}

	ga, err := ToGonum(a)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	var gc mat.Dense
	gc.Mul(ga, gb)

	res, err := FromGonum(&gc)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}

	return res, nil
}

// compile-time check that MulGonum satisfies Multiplier.
var _ Multiplier = MulGonum
