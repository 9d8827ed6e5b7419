package refcheck_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/matref/fixture"
	"github.com/katalvlaran/matref/refcheck"
)

// ExampleRun_fixed4x4 prints the listing compared against the 4×4 testbench log.
func ExampleRun_fixed4x4() {
	fx, _ := fixture.Fixed4x4()
	if _, err := refcheck.Run(os.Stdout, fx, refcheck.WithCrossCheck(true)); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// === Go Computed Matrix Multiplication Result ===
	// Result[0][0] = 250
	// Result[0][1] = 260
	// Result[0][2] = 270
	// Result[0][3] = 280
	// Result[1][0] = 618
	// Result[1][1] = 644
	// Result[1][2] = 670
	// Result[1][3] = 696
	// Result[2][0] = 986
	// Result[2][1] = 1028
	// Result[2][2] = 1070
	// Result[2][3] = 1112
	// Result[3][0] = 1354
	// Result[3][1] = 1412
	// Result[3][2] = 1470
	// Result[3][3] = 1528
}

// ExampleRun_parametric prints the 6×6 listing.
func ExampleRun_parametric() {
	fx, _ := fixture.Parametric()
	if _, err := refcheck.Run(os.Stdout, fx); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// === Go Computed 6x6 Matrix Multiplication Result ===
	// Result[0][0] = 91
	// Result[0][1] = 182
	// Result[0][2] = 273
	// Result[0][3] = 364
	// Result[0][4] = 455
	// Result[0][5] = 546
	// Result[1][0] = 217
	// Result[1][1] = 434
	// Result[1][2] = 651
	// Result[1][3] = 868
	// Result[1][4] = 1085
	// Result[1][5] = 1302
	// Result[2][0] = 343
	// Result[2][1] = 686
	// Result[2][2] = 1029
	// Result[2][3] = 1372
	// Result[2][4] = 1715
	// Result[2][5] = 2058
	// Result[3][0] = 469
	// Result[3][1] = 938
	// Result[3][2] = 1407
	// Result[3][3] = 1876
	// Result[3][4] = 2345
	// Result[3][5] = 2814
	// Result[4][0] = 595
	// Result[4][1] = 1190
	// Result[4][2] = 1785
	// Result[4][3] = 2380
	// Result[4][4] = 2975
	// Result[4][5] = 3570
	// Result[5][0] = 721
	// Result[5][1] = 1442
	// Result[5][2] = 2163
	// Result[5][3] = 2884
	// Result[5][4] = 3605
	// Result[5][5] = 4326
}
