// Command matmulnxn prints the reference product of the parametric N×N
// testbench vectors, A[i][j] = i·N + j + 1 and B[i][j] = (i+1)·(j+1).
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
	fs := flag.NewFlagSet("matmulnxn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", fixture.DefaultSize, "matrix side length N")
	crossCheck := fs.Bool("crosscheck", false, "recompute with gonum and fail on any difference")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *n < 0 {
		fmt.Fprintf(stderr, "Error: -n must be >= 0, got %d\n", *n)
		return 2
	}

	fx, err := fixture.Parametric(fixture.WithSize(*n))
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
