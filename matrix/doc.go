// Package matrix provides the integer matrix model and the multiplication
// kernels used to build reference results for hardware matrix multipliers.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major int64 matrix with bounds-checked access.
//   - Mul, an exact int64 product that reports overflow instead of wrapping.
//   - MulGonum, the same product computed by gonum's dense routine, for
//     cross-checking the native kernel.
//   - Validators shared by every kernel (nil operands, inner dimensions).
//
// Zero-sized shapes (0×N, N×0) are legal so that an N=0 reference run is
// representable. All errors are sentinels matched with errors.Is.
package matrix
