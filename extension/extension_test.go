// Package extension_test contains unit tests for extension invariants.
package extension_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/extension"
	"github.com/katalvlaran/lvlalg/module"
)

func TestMultiplicationMatrices(t *testing.T) {
	e := gaussianIntegers(t)
	assert.Equal(t, 2, e.Degree())

	col, err := e.ColMultiplicationMatrix(g(3, 5))
	require.NoError(t, err)
	row0, _ := col.Row(0)
	row1, _ := col.Row(1)
	assert.Equal(t, []int64{3, -5}, ints(row0))
	assert.Equal(t, []int64{5, 3}, ints(row1))

	row, err := e.RowMultiplicationMatrix(g(3, 5))
	require.NoError(t, err)
	r0, _ := row.Row(0)
	assert.Equal(t, []int64{3, 5}, ints(r0))

	_, err = e.ColMultiplicationMatrix(zi.Of(nil, nil))
	assert.ErrorIs(t, err, module.ErrNotInRing)
}

func TestGaussianNorm(t *testing.T) {
	e := gaussianIntegers(t)
	for _, tc := range []struct{ a, b, want int64 }{
		{0, 0, 0}, {1, 0, 1}, {0, 1, 1}, {3, 4, 25}, {-2, 7, 53},
	} {
		n, err := e.Norm(g(tc.a, tc.b))
		require.NoError(t, err)
		assert.Equal(t, tc.want, n.Int64(), "N(%d + %di)", tc.a, tc.b)
	}
}

// TestNormMultiplicativeTraceAdditive checks N(xy) = N(x)N(y) and Tr(x+y) = Tr(x)+Tr(y).
func TestNormMultiplicativeTraceAdditive(t *testing.T) {
	e := gaussianIntegers(t)
	pairs := [][2]gauss{
		{g(1, 2), g(3, -1)},
		{g(0, 5), g(-4, 4)},
		{g(7, 0), g(2, 9)},
	}
	for _, p := range pairs {
		x, y := p[0], p[1]
		nx, err := e.Norm(x)
		require.NoError(t, err)
		ny, err := e.Norm(y)
		require.NoError(t, err)
		nxy, err := e.Norm(zi.Mul(x, y))
		require.NoError(t, err)
		assert.Zero(t, nxy.Cmp(new(big.Int).Mul(nx, ny)))

		tx, err := e.Trace(x)
		require.NoError(t, err)
		ty, err := e.Trace(y)
		require.NoError(t, err)
		txy, err := e.Trace(zi.Add(x, y))
		require.NoError(t, err)
		assert.Zero(t, txy.Cmp(new(big.Int).Add(tx, ty)))
	}
}

func TestRootTwoInvariants(t *testing.T) {
	e := rootTwoField(t)
	x := q(rat(1, 2), rat(3, 1)) // 1/2 + 3√2

	n, err := e.Norm(x)
	require.NoError(t, err)
	assert.Equal(t, "-71/4", n.RatString()) // 1/4 − 18

	tr, err := e.Trace(x)
	require.NoError(t, err)
	assert.Equal(t, "1", tr.RatString())

	p, err := e.MinPoly(k2.Sqrt())
	require.NoError(t, err)
	assert.Equal(t, "x^2 + -2/1", p.String())

	p, err = e.MinPoly(x)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "-71/4", p.Coeff(0).RatString())
	assert.Equal(t, "-1", p.Coeff(1).RatString())

	// A rational has a linear minimal polynomial.
	p, err = e.MinPoly(k2.FromRat(rat(-5, 3)))
	require.NoError(t, err)
	assert.Equal(t, 1, p.Degree())
	assert.Equal(t, "5/3", p.Coeff(0).RatString())
}

func TestGaussianMinPoly(t *testing.T) {
	e := gaussianIntegers(t)
	p, err := e.MinPoly(zi.Sqrt())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 1}, ints(p.Coeffs()))

	// 1 + i satisfies x^2 − 2x + 2.
	p, err = e.MinPoly(g(1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int64{2, -2, 1}, ints(p.Coeffs()))
}

func TestDiscriminant(t *testing.T) {
	k := rootTwoField(t)
	d, err := k.Discriminant([]qrt2{k2.One(), k2.Sqrt()})
	require.NoError(t, err)
	assert.Equal(t, "8", d.RatString())

	zext := gaussianIntegers(t)
	gram, err := zext.TraceFormMatrix([]gauss{zi.One(), zi.Sqrt()})
	require.NoError(t, err)
	r0, _ := gram.Row(0)
	r1, _ := gram.Row(1)
	assert.Equal(t, []int64{2, 0}, ints(r0))
	assert.Equal(t, []int64{0, -2}, ints(r1))

	// The discriminant of any Z-basis of Z[i] is −4.
	for _, basis := range [][]gauss{
		{zi.One(), zi.Sqrt()},
		{zi.One(), g(1, 1)},
		{g(2, 1), g(1, 1)},
	} {
		d, err := zext.Discriminant(basis)
		require.NoError(t, err)
		assert.Equal(t, int64(-4), d.Int64(), "basis %v", basis)
	}

	_, err = zext.TraceFormMatrix([]gauss{zi.One()})
	assert.ErrorIs(t, err, extension.ErrElementCount)
	_, err = zext.Discriminant([]gauss{zi.One(), zi.One(), zi.One()})
	assert.ErrorIs(t, err, extension.ErrElementCount)
}

func TestMissingCapability(t *testing.T) {
	e := bareGaussianIntegers(t)

	tr, err := e.Trace(g(4, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(8), tr.Int64())

	_, err = e.Norm(g(4, 1))
	assert.ErrorIs(t, err, extension.ErrMissingCapability)
	_, err = e.MinPoly(g(4, 1))
	assert.ErrorIs(t, err, extension.ErrMissingCapability)
	_, err = e.Discriminant([]gauss{zi.One(), zi.Sqrt()})
	assert.ErrorIs(t, err, extension.ErrMissingCapability)
}

func TestBatchEvaluation(t *testing.T) {
	e := gaussianIntegers(t)
	elems := make([]gauss, 0, 40)
	for a := int64(-4); a < 4; a++ {
		for b := int64(-2); b < 3; b++ {
			elems = append(elems, g(a, b))
		}
	}

	norms, err := e.Norms(context.Background(), elems)
	require.NoError(t, err)
	traces, err := e.Traces(context.Background(), elems)
	require.NoError(t, err)
	polys, err := e.MinPolys(context.Background(), elems)
	require.NoError(t, err)
	require.Len(t, norms, len(elems))

	for i, x := range elems {
		a, b := x.A.Int64(), x.B.Int64()
		assert.Equal(t, a*a+b*b, norms[i].Int64(), "norm %d", i)
		assert.Equal(t, 2*a, traces[i].Int64(), "trace %d", i)
		if b != 0 {
			// x^2 − Tr·x + N
			assert.Equal(t, []int64{a*a + b*b, -2 * a, 1}, ints(polys[i].Coeffs()), "minpoly %d", i)
		} else {
			assert.Equal(t, []int64{-a, 1}, ints(polys[i].Coeffs()), "minpoly %d", i)
		}
	}
}

func TestBatchErrors(t *testing.T) {
	e := gaussianIntegers(t)

	_, err := e.Norms(context.Background(), []gauss{g(1, 1), zi.Of(nil, big.NewInt(1)), g(2, 0)})
	assert.ErrorIs(t, err, module.ErrNotInRing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Traces(ctx, []gauss{g(1, 1), g(2, 2)})
	assert.ErrorIs(t, err, context.Canceled)

	out, err := e.Norms(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
