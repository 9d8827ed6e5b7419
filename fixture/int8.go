// SPDX-License-Identifier: MIT

package fixture

import (
	"fmt"

	"github.com/katalvlaran/matref/matrix"
)

// Pattern selects how an INT8 operand is filled.
type Pattern int

// Patterns of the accelerator test-vector generator. The numeric values
// match the firmware's pattern codes so logs from both sides line up.
const (
	PatternRandom      Pattern = iota // rand()%256 - 128, full signed byte range
	PatternIdentity                   // I
	PatternSmallRandom                // rand()%16 - 8, in [-8, 8)
	PatternIncremental                // (idx + id*7) % 127 over the flat index
	PatternDiagonal                   // 2·I
)

// SeedBase is the generator seed of test case 0; case k is seeded with SeedBase+k.
const SeedBase uint32 = 0x12345678

var patternNames = map[Pattern]string{
	PatternRandom:      "random",
	PatternIdentity:    "identity",
	PatternSmallRandom: "small",
	PatternIncremental: "incremental",
	PatternDiagonal:    "diagonal",
}

func (p Pattern) String() string {
	if s, ok := patternNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Pattern(%d)", int(p))
}

// lcg is the firmware's rand(): a 31-bit linear congruential generator.
// It is reproduced bit for bit so fixtures equal the vectors the
// accelerator test loads; math/rand would produce a different stream.
type lcg struct{ state uint32 }

func (g *lcg) next() int64 {
	g.state = (g.state*1103515245 + 12345) & 0x7fffffff
	return int64(g.state)
}

// patternMatrix fills an n×n operand. Random patterns draw from g in
// row-major order, so A and B of one case share a single stream.
func patternMatrix(n int, p Pattern, id int, g *lcg) (*matrix.Dense, error) {
	return matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		switch p {
		case PatternRandom:
			return int64(int8(g.next()%256 - 128))
		case PatternIdentity:
			if i == j {
				return 1
			}
			return 0
		case PatternSmallRandom:
			return int64(int8(g.next()%16 - 8))
		case PatternIncremental:
			return int64(int8((i*n + j + id*7) % 127))
		default:
			if i == j {
				return 2
			}
			return 0
		}
	})
}

// Int8Case describes one accelerator verification case.
type Int8Case struct {
	Name   string
	TestID int // seeds the generator with SeedBase+TestID
	A, B   Pattern
}

// Int8Cases are the pattern pairs of the accelerator verification suite,
// in suite order.
var Int8Cases = []Int8Case{
	{Name: "int8-identity-identity", TestID: 1, A: PatternIdentity, B: PatternIdentity},
	{Name: "int8-random-random", TestID: 2, A: PatternRandom, B: PatternRandom},
	{Name: "int8-small-small", TestID: 3, A: PatternSmallRandom, B: PatternSmallRandom},
	{Name: "int8-identity-incremental", TestID: 4, A: PatternIdentity, B: PatternIncremental},
	{Name: "int8-incremental-small", TestID: 5, A: PatternIncremental, B: PatternSmallRandom},
	{Name: "int8-diagonal-incremental", TestID: 6, A: PatternDiagonal, B: PatternIncremental},
}

const bannerInt8CaseFmt = "=== Go Computed %dx%d INT8 %s x %s Matrix Multiplication Result ==="

// Build generates the case's operands at side DefaultInt8Size (or WithSize).
// Cases with an identity operand also carry the expected product.
func (c Int8Case) Build(opts ...Option) (*Fixture, error) {
	o := gatherOptions(DefaultInt8Size, opts)
	n := o.size
	g := &lcg{state: SeedBase + uint32(c.TestID)}

	a, err := patternMatrix(n, c.A, 0, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}
	b, err := patternMatrix(n, c.B, 0, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.Name, err)
	}

	fx := &Fixture{
		Name:   c.Name,
		Banner: pick(o.banner, fmt.Sprintf(bannerInt8CaseFmt, n, n, c.A, c.B)),
		A:      a,
		B:      b,
	}
	switch {
	case c.B == PatternIdentity:
		fx.Expect = a
	case c.A == PatternIdentity:
		fx.Expect = b
	}

	return fx, nil
}

// Int8Host returns the host-side bring-up pair: A[k] = (3k) & 0x7F over the
// flat index, B = I. The expected product is A.
func Int8Host(opts ...Option) (*Fixture, error) {
	o := gatherOptions(DefaultInt8Size, opts)
	n := o.size
	a, err := matrix.NewDenseFunc(n, n, func(i, j int) int64 {
		return int64(int8(((i*n + j) * 3) & 0x7F))
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameInt8Host, err)
	}
	b, err := patternMatrix(n, PatternIdentity, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameInt8Host, err)
	}

	return &Fixture{
		Name:   NameInt8Host,
		Banner: pick(o.banner, fmt.Sprintf(bannerInt8HostFmt, n, n)),
		A:      a,
		B:      b,
		Expect: a,
	}, nil
}
