// Package module_test contains unit tests for the FreeModule descriptor.
package module_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
)

func TestZeroAndBasis(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 3)
	assert.Equal(t, 3, m.Rank())
	assert.Equal(t, "Z^3", m.String())
	assert.Equal(t, []int64{0, 0, 0}, ints(m.Zero()))

	basis := m.BasisVecs()
	require.Len(t, basis, 3)
	for i, b := range basis {
		e, err := m.BasisElement(i)
		require.NoError(t, err)
		assert.True(t, m.Equal(b, e))
		want := []int64{0, 0, 0}
		want[i] = 1
		assert.Equal(t, want, ints(b))
	}

	_, err := m.BasisElement(3)
	assert.ErrorIs(t, err, module.ErrOutOfRange)
	_, err = m.BasisElement(-1)
	assert.ErrorIs(t, err, module.ErrOutOfRange)
}

// TestRankThreeArithmetic is the concrete rank-3 integer scenario.
func TestRankThreeArithmetic(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 3)
	a, _ := m.BasisElement(0)
	b, _ := m.BasisElement(1)
	c, _ := m.BasisElement(2)

	ab, err := m.Add(a, b)
	require.NoError(t, err)
	nb, err := m.Neg(b)
	require.NoError(t, err)
	got, err := m.Add(nb, ab)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0}, ints(got))

	bc, err := m.Add(b, c)
	require.NoError(t, err)
	got, err = m.Add(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 1}, ints(got))

	got, err = m.ScalarMul(a, big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 0, 0}, ints(got))

	got, err = m.Sub(ab, bc)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, -1}, ints(got))
}

func TestAddLaws(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 4)
	u, v, w := zz(1, -2, 3, 0), zz(7, 7, -1, 5), zz(-3, 0, 2, 9)

	uv, _ := m.Add(u, v)
	vu, _ := m.Add(v, u)
	assert.True(t, m.Equal(uv, vu), "commutative")

	left, _ := m.Add(uv, w)
	vw, _ := m.Add(v, w)
	right, _ := m.Add(u, vw)
	assert.True(t, m.Equal(left, right), "associative")

	z, _ := m.Add(u, m.Zero())
	assert.True(t, m.Equal(u, z), "zero is neutral")
	assert.Equal(t, []int64{8, 5, 2, 5}, ints(uv))
}

func TestIsElement(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 2)
	require.NoError(t, m.IsElement(zz(1, 2)))

	err := m.IsElement(zz(1, 2, 3))
	assert.ErrorIs(t, err, module.ErrLengthMismatch)

	err = m.IsElement([]*big.Int{big.NewInt(1), nil})
	assert.ErrorIs(t, err, module.ErrNotInRing)
	assert.ErrorIs(t, err, ring.ErrNotElement)
	var me *module.MembershipError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Index)

	// Arithmetic surfaces the same errors.
	_, err = m.Add(zz(1, 2), zz(1))
	assert.ErrorIs(t, err, module.ErrLengthMismatch)
	_, err = m.ScalarMul(zz(1, 2), nil)
	assert.ErrorIs(t, err, module.ErrNotInRing)
}

func TestNewPanics(t *testing.T) {
	requirePanicsWith(t, module.ErrContractViolation, func() { module.New[*big.Int](ring.Z, -1) })
	requirePanicsWith(t, module.ErrContractViolation, func() { module.New[*big.Int](nil, 1) })
}

func TestSameAs(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 2)
	assert.True(t, m.SameAs(module.New[*big.Int](ring.Integers{}, 2)))
	assert.True(t, m.SameAs(&m))
	assert.False(t, m.SameAs(module.New[*big.Int](ring.Z, 3)))
	assert.False(t, m.SameAs(module.New[*big.Rat](ring.Q, 2)))
	assert.False(t, m.SameAs("Z^2"))
}

func TestMatrixBridges(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 3)
	v := zz(4, -5, 6)

	col, err := m.ToColumn(v)
	require.NoError(t, err)
	rows, cols := col.Shape()
	assert.Equal(t, [2]int{3, 1}, [2]int{rows, cols})
	back, err := m.FromColumn(col)
	require.NoError(t, err)
	assert.True(t, m.Equal(v, back))

	row, err := m.ToRow(v)
	require.NoError(t, err)
	rows, cols = row.Shape()
	assert.Equal(t, [2]int{1, 3}, [2]int{rows, cols})
	back, err = m.FromRow(row)
	require.NoError(t, err)
	assert.True(t, m.Equal(v, back))

	_, err = m.FromColumn(row)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.FromRow(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	coords, err := m.ToVec(v)
	require.NoError(t, err)
	coords[0] = big.NewInt(0)
	assert.Equal(t, []int64{4, -5, 6}, ints(v), "ToVec returns a copy")
}

// TestCoordinatewiseDelegation verifies that arithmetic is exactly one ring
// call per coordinate and that membership is checked on every component.
func TestCoordinatewiseDelegation(t *testing.T) {
	spy := &spyRing{}
	spy.On("IsElement", mock.Anything).Return(nil)
	spy.On("Add", int64(1), int64(10)).Return().Once()
	spy.On("Add", int64(2), int64(20)).Return().Once()
	spy.On("Add", int64(3), int64(30)).Return().Once()
	spy.On("Mul", int64(-2), mock.Anything).Return().Times(3)

	m := module.New[int64](spy, 3)
	sum, err := m.Add([]int64{1, 2, 3}, []int64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 22, 33}, sum)

	prod, err := m.ScalarMul([]int64{1, 2, 3}, -2)
	require.NoError(t, err)
	assert.Equal(t, []int64{-2, -4, -6}, prod)

	spy.AssertExpectations(t)
	spy.AssertNumberOfCalls(t, "Add", 3)
	spy.AssertNumberOfCalls(t, "IsElement", 6+4) // two operands, then operand + scalar
}

func TestMembershipDelegation(t *testing.T) {
	errNegative := errors.New("negative")
	spy := &spyRing{}
	spy.On("IsElement", int64(-1)).Return(errNegative)
	spy.On("IsElement", mock.Anything).Return(nil)

	m := module.New[int64](spy, 3)
	err := m.IsElement([]int64{0, 5, -1})
	assert.ErrorIs(t, err, errNegative)
	var me *module.MembershipError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 2, me.Index)
}
