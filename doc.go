// Package matref is a software reference for systolic-array matrix
// multipliers: it computes small dense integer products and prints them in
// the same `Result[i][j] = value` listing the hardware testbench emits, so
// the two logs can be diffed line for line.
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/   — immutable int64 Dense, exact Mul, gonum-backed MulGonum
//	fixture/  — testbench input vectors (4x4 literal, N×N formula, INT8 identity)
//	report/   — the row-major Result[i][j] listing
//	refcheck/ — validate → multiply → cross-check → print, plus Compare/Verify
//
// Binaries live under cmd/: matmul4x4, matmulnxn and int8identity.
//
//	go run ./cmd/matmulnxn -n 6 > sw.log && diff sw.log tb.log
package matref
