// Package fixture builds the input matrix pairs fed to the reference kernels.
//
// Each Fixture mirrors one hardware testbench vector:
//
//	4x4            literal A = 1..16, B = 17..32
//	nxn            A[i][j] = i·N + j + 1, B[i][j] = (i+1)·(j+1), N = 6 by default
//	int8-identity  A[k] = int8(k+1) over the flat index, B = I, N = 16 by default
//	int8-host      A[k] = (3k) & 0x7F over the flat index, B = I
//	int8-<a>-<b>   accelerator suite pairs built from Pattern generators
//	               (identity, incremental, 2·I, seeded random bytes)
//
// Random patterns use the firmware's 31-bit LCG seeded with SeedBase plus
// the case's test id, so they are reproducible across runs and machines.
//
// Fixtures are deterministic and take no external input. The sizes are
// options rather than constants because the testbench vectors change with
// the RTL under test.
package fixture
