// Command int8identity replays the INT8 accelerator vectors. By default it
// runs the bring-up vector (A = int8 flat index + 1, B = I); -case selects
// any other int8-* fixture. It prints the product listing, then verifies it
// against the vector's known product (A × I = A) or, when the vector has
// none, against gonum's product, exiting non-zero on any mismatch.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/matref/fixture"
	"github.com/katalvlaran/matref/matrix"
	"github.com/katalvlaran/matref/refcheck"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("int8identity", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("case", fixture.NameInt8Identity, "INT8 vector to run (any int8-* fixture name)")
	n := fs.Int("n", fixture.DefaultInt8Size, "systolic array side length")
	limit := fs.Int("limit", refcheck.DefaultMismatchLimit, "mismatch lines printed before the summary")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *n < 0 {
		fmt.Fprintf(stderr, "Error: -n must be >= 0, got %d\n", *n)
		return 2
	}
	if !strings.HasPrefix(*name, "int8-") {
		fmt.Fprintf(stderr, "Error: -case must name an int8-* fixture, got %q\n", *name)
		return 2
	}

	fx, err := fixture.ByName(*name, fixture.WithSize(*n))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	c, err := refcheck.Run(stdout, fx, refcheck.WithCrossCheck(true))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	want := fx.Expect
	if want == nil {
		if want, err = matrix.MulGonum(fx.A, fx.B); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	st, err := refcheck.Verify(stdout, want, c, *limit)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !st.Passed() {
		return 1
	}

	return 0
}
