// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels.
//   • Force the non-Dense fallback paths via hide{}.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matref/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so code under test takes the generic At path instead of the *Dense fast-path.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from a row literal or fails the test.
func MustRows(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// naiveProduct is an independent reference: plain int64 triple loop over literals.
func naiveProduct(a, b [][]int64) [][]int64 {
	out := make([][]int64, len(a))
	for i := range a {
		out[i] = make([]int64, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

// seq4 is the 4×4 pair 1..16 and 17..32 used by the hardware testbench.
var (
	seq4A = [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	seq4B = [][]int64{{17, 18, 19, 20}, {21, 22, 23, 24}, {25, 26, 27, 28}, {29, 30, 31, 32}}
)
