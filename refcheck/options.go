// SPDX-License-Identifier: MIT

package refcheck

import "github.com/katalvlaran/matref/matrix"

// Defaults.
const (
	// DefaultCrossCheck leaves the gonum cross-check off; the native kernel is exact on its own.
	DefaultCrossCheck = false

	// DefaultMismatchLimit is how many mismatch lines Verify prints before the summary.
	DefaultMismatchLimit = 4
)

const panicKernelNil = "refcheck: WithKernel: kernel must not be nil"

// Option mutates internal options.
type Option func(*Options)

// Options configures Run. Fields are unexported; use WithX.
type Options struct {
	kernel     matrix.Multiplier
	crossCheck bool
}

// WithKernel selects the primary multiplier. Panics on nil.
func WithKernel(k matrix.Multiplier) Option {
	if k == nil {
		panic(panicKernelNil)
	}
	return func(o *Options) { o.kernel = k }
}

// WithCrossCheck recomputes the product with matrix.MulGonum and fails the
// run if any cell disagrees with the primary kernel.
func WithCrossCheck(on bool) Option {
	return func(o *Options) { o.crossCheck = on }
}

func gatherOptions(opts []Option) Options {
	o := Options{kernel: matrix.Mul, crossCheck: DefaultCrossCheck}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
