// SPDX-License-Identifier: MIT

// Package fixture: functional configuration for fixture builders.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic only on nonsensical values (programmer error).
package fixture

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSize is the side length of the parametric N×N fixture.
	DefaultSize = 6

	// DefaultInt8Size is the side length of the INT8 accelerator array.
	DefaultInt8Size = 16
)

// ---------- Internal panic messages (no magic strings) ----------

const panicSizeInvalid = "fixture: WithSize: n must be >= 0"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options holds fixture configuration. Fields are unexported; use WithX.
type Options struct {
	size   int    // side length N
	banner string // banner override; "" means "use the builder's default"
}

// WithSize sets the side length N. Panics if n < 0.
func WithSize(n int) Option {
	if n < 0 {
		panic(panicSizeInvalid)
	}
	return func(o *Options) { o.size = n }
}

// WithBanner overrides the banner line printed before the results.
func WithBanner(s string) Option {
	return func(o *Options) { o.banner = s }
}

// gatherOptions applies opts over the builder defaults.
func gatherOptions(defSize int, opts []Option) Options {
	o := Options{size: defSize}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
