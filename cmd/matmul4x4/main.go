// Command matmul4x4 prints the reference product of the fixed 4×4 testbench
// vectors (A = 1..16, B = 17..32) in the testbench log format.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matref/fixture"
	"github.com/katalvlaran/matref/refcheck"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("matmul4x4", flag.ContinueOnError)
	fs.SetOutput(stderr)
	crossCheck := fs.Bool("crosscheck", false, "recompute with gonum and fail on any difference")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fx, err := fixture.Fixed4x4()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if _, err = refcheck.Run(stdout, fx, refcheck.WithCrossCheck(*crossCheck)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
