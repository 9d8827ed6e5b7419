// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/matref/matrix"
)

// Fixture names accepted by ByName.
const (
	NameFixed4x4     = "4x4"
	NameParametric   = "nxn"
	NameInt8Identity = "int8-identity"
	NameInt8Host     = "int8-host"
)

// Banners printed ahead of the result listing.
const (
	BannerFixed4x4        = "=== Go Computed Matrix Multiplication Result ==="
	bannerParametricFmt   = "=== Go Computed %dx%d Matrix Multiplication Result ==="
	bannerInt8IdentityFmt = "=== Go Computed %dx%d INT8 Identity Matrix Multiplication Result ==="
	bannerInt8HostFmt     = "=== Go Computed %dx%d INT8 Host Pattern Matrix Multiplication Result ==="
)

var (
	// ErrUnknownFixture is returned by ByName for an unregistered name.
	ErrUnknownFixture = errors.New("fixture: unknown fixture")
)

// Fixture is one reference input pair plus the banner identifying the run.
// Expect is the known product when the vector defines one (an identity
// operand), nil otherwise.
type Fixture struct {
	Name   string
	Banner string
	A, B   *matrix.Dense
	Expect *matrix.Dense
}

// fixed4x4A and fixed4x4B are the literal vectors of the 4×4 testbench.
var (
	fixed4x4A = [][]int64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	fixed4x4B = [][]int64{
		{17, 18, 19, 20},
		{21, 22, 23, 24},
		{25, 26, 27, 28},
		{29, 30, 31, 32},
	}
)

// Fixed4x4 returns the literal 4×4 pair. Only WithBanner has an effect.
func Fixed4x4(opts ...Option) (*Fixture, error) {
	o := gatherOptions(len(fixed4x4A), opts)
	a, err := matrix.NewDenseFromRows(fixed4x4A)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameFixed4x4, err)
	}
	b, err := matrix.NewDenseFromRows(fixed4x4B)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameFixed4x4, err)
	}

	return &Fixture{
		Name:   NameFixed4x4,
		Banner: pick(o.banner, BannerFixed4x4),
		A:      a,
		B:      b,
	}, nil
}

// Parametric returns the N×N pair A[i][j] = i·N + j + 1, B[i][j] = (i+1)·(j+1).
// N defaults to DefaultSize; N = 0 yields two empty matrices.
func Parametric(opts ...Option) (*Fixture, error) {
	o := gatherOptions(DefaultSize, opts)
	n := o.size
	a, err := matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		return int64(i)*int64(n) + int64(j) + 1
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameParametric, err)
	}
	b, err := matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		return int64(i+1) * int64(j+1)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameParametric, err)
	}

	return &Fixture{
		Name:   NameParametric,
		Banner: pick(o.banner, fmt.Sprintf(bannerParametricFmt, n, n)),
		A:      a,
		B:      b,
	}, nil
}

// Int8Identity returns the accelerator bring-up pair: A holds the flat
// index k+1 truncated to a signed byte (so 128 wraps to -128), B is the
// identity. The expected product is A itself.
func Int8Identity(opts ...Option) (*Fixture, error) {
	o := gatherOptions(DefaultInt8Size, opts)
	n := o.size
	a, err := matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		return int64(int8(i*n + j + 1))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameInt8Identity, err)
	}
	b, err := matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		if i == j {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameInt8Identity, err)
	}

	return &Fixture{
		Name:   NameInt8Identity,
		Banner: pick(o.banner, fmt.Sprintf(bannerInt8IdentityFmt, n, n)),
		A:      a,
		B:      b,
		Expect: a,
	}, nil
}

type builder func(opts ...Option) (*Fixture, error)

var registry = buildRegistry()

func buildRegistry() map[string]builder {
	r := map[string]builder{
		NameFixed4x4:     Fixed4x4,
		NameParametric:   Parametric,
		NameInt8Identity: Int8Identity,
		NameInt8Host:     Int8Host,
	}
	for _, c := range Int8Cases {
		r[c.Name] = c.Build
	}

	return r
}

// Names lists registered fixture names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ByName builds the named fixture.
func ByName(name string, opts ...Option) (*Fixture, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownFixture)
	}

	return b(opts...)
}

func pick(override, def string) string {
	if override != "" {
		return override
	}
	return def
}
