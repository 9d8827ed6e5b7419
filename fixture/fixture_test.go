package fixture_test

import (
	"testing"

	"github.com/katalvlaran/matref/fixture"
	"github.com/stretchr/testify/require"
)

func TestFixed4x4(t *testing.T) {
	fx, err := fixture.Fixed4x4()
	require.NoError(t, err)
	require.Equal(t, fixture.NameFixed4x4, fx.Name)
	require.Equal(t, fixture.BannerFixed4x4, fx.Banner)
	require.Equal(t, [][]int64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}, fx.A.RawRows())
	require.Equal(t, [][]int64{{17, 18, 19, 20}, {21, 22, 23, 24}, {25, 26, 27, 28}, {29, 30, 31, 32}}, fx.B.RawRows())
}

func TestFixed4x4IgnoresSize(t *testing.T) {
	fx, err := fixture.Fixed4x4(fixture.WithSize(9))
	require.NoError(t, err)
	require.Equal(t, 4, fx.A.Rows())
}

func TestParametricDefault(t *testing.T) {
	fx, err := fixture.Parametric()
	require.NoError(t, err)
	require.Equal(t, fixture.DefaultSize, fx.A.Rows())
	require.Equal(t, fixture.DefaultSize, fx.B.Cols())
	require.Contains(t, fx.Banner, "6x6")
	require.Contains(t, fx.Banner, "Matrix Multiplication Result")

	row0, err := fx.A.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, row0)

	last, err := fx.A.At(5, 5)
	require.NoError(t, err)
	require.Equal(t, int64(36), last)
}

func TestParametricFormulas(t *testing.T) {
	const n = 5
	fx, err := fixture.Parametric(fixture.WithSize(n))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, err := fx.A.At(i, j)
			require.NoError(t, err)
			require.Equal(t, int64(i*n+j+1), a)

			b, err := fx.B.At(i, j)
			require.NoError(t, err)
			require.Equal(t, int64((i+1)*(j+1)), b)
		}
	}
}

func TestParametricZero(t *testing.T) {
	fx, err := fixture.Parametric(fixture.WithSize(0))
	require.NoError(t, err)
	require.Equal(t, 0, fx.A.Rows())
	require.Equal(t, 0, fx.B.Cols())
}

func TestWithSizeNegativePanics(t *testing.T) {
	require.Panics(t, func() { fixture.WithSize(-1) })
}

func TestWithBanner(t *testing.T) {
	fx, err := fixture.Parametric(fixture.WithBanner("custom"))
	require.NoError(t, err)
	require.Equal(t, "custom", fx.Banner)
}

func TestInt8IdentityWraps(t *testing.T) {
	fx, err := fixture.Int8Identity()
	require.NoError(t, err)
	require.Equal(t, fixture.DefaultInt8Size, fx.A.Rows())

	v, err := fx.A.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), v)

	v, err = fx.A.At(7, 15) // flat 127 -> 128 -> -128
	require.NoError(t, err)
	require.Equal(t, int64(-128), v)

	v, err = fx.A.At(15, 15) // flat 255 -> 256 -> 0
	require.NoError(t, err)
	require.Equal(t, int64(0), v)

	for i := 0; i < fixture.DefaultInt8Size; i++ {
		d, err := fx.B.At(i, i)
		require.NoError(t, err)
		require.Equal(t, int64(1), d)
	}
	off, err := fx.B.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), off)
}

func TestByName(t *testing.T) {
	require.Equal(t, []string{
		"4x4",
		"int8-diagonal-incremental",
		"int8-host",
		"int8-identity",
		"int8-identity-identity",
		"int8-identity-incremental",
		"int8-incremental-small",
		"int8-random-random",
		"int8-small-small",
		"nxn",
	}, fixture.Names())

	for _, name := range fixture.Names() {
		fx, err := fixture.ByName(name)
		require.NoError(t, err, name)
		require.Equal(t, name, fx.Name)
	}

	_, err := fixture.ByName("8x8")
	require.ErrorIs(t, err, fixture.ErrUnknownFixture)
}
