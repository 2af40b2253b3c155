// Package module_test contains unit tests for submodules, cosets and affine subsets.
package module_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
)

// SubmoduleSuite works in Z^2 with the lattice L = 2Z × 3Z.
type SubmoduleSuite struct {
	suite.Suite
	m module.FreeModule[*big.Int]
	l *module.Submodule[*big.Int]
}

func (s *SubmoduleSuite) SetupTest() {
	s.m = module.New[*big.Int](ring.Z, 2)
	var err error
	s.l, err = s.m.GeneratedSubmodule(zz(2, 0), zz(0, 3))
	s.Require().NoError(err)
}

func (s *SubmoduleSuite) TestCanonicalBasis() {
	s.Equal(2, s.l.Rank())
	s.Equal([]int{0, 1}, s.l.Pivots())
	basis := s.l.Basis()
	s.Equal([]int64{2, 0}, ints(basis[0]))
	s.Equal([]int64{0, 3}, ints(basis[1]))
}

// TestCanonicality: different generator sets of one lattice are Equal.
func (s *SubmoduleSuite) TestCanonicality() {
	for _, gens := range [][][]*big.Int{
		{zz(2, 3), zz(0, 3)},
		{zz(-2, 0), zz(2, 3), zz(4, -3)},
		{zz(2, -3), zz(0, 6), zz(2, 0), zz(0, 0)},
	} {
		other, err := s.m.GeneratedSubmodule(gens...)
		s.Require().NoError(err)
		s.True(s.l.Equal(other), "generators %v", gens)
	}

	smaller, err := s.m.GeneratedSubmodule(zz(4, 0), zz(0, 3))
	s.Require().NoError(err)
	s.False(s.l.Equal(smaller))
	s.True(s.l.Includes(smaller))
	s.False(smaller.Includes(s.l))
}

func (s *SubmoduleSuite) TestContainsAndCoordinates() {
	ok, err := s.l.Contains(zz(4, -3))
	s.Require().NoError(err)
	s.True(ok)
	ok, err = s.l.Contains(zz(1, 3))
	s.Require().NoError(err)
	s.False(ok)

	c, ok, err := s.l.Coordinates(zz(4, -3))
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal([]int64{2, -1}, ints(c))

	_, ok, err = s.l.Coordinates(zz(1, 0))
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.l.Contains(zz(1))
	s.ErrorIs(err, module.ErrLengthMismatch)
}

func (s *SubmoduleSuite) TestSumAndImproper() {
	odd, err := s.m.GeneratedSubmodule(zz(1, 1))
	s.Require().NoError(err)
	sum, err := s.l.Sum(odd)
	s.Require().NoError(err)
	whole, err := s.m.ImproperSubmodule()
	s.Require().NoError(err)
	// (1,1) together with (2,0) and (0,3) generates Z^2.
	s.True(sum.Equal(whole))

	other := module.New[*big.Int](ring.Z, 3)
	z3, err := other.ZeroSubmodule()
	s.Require().NoError(err)
	_, err = s.l.Sum(z3)
	s.ErrorIs(err, module.ErrModuleMismatch)
	s.False(s.l.Includes(z3))
}

func (s *SubmoduleSuite) TestCosetCanonicalRepresentative() {
	c, err := s.l.Coset(zz(5, 7))
	s.Require().NoError(err)
	s.Equal([]int64{1, 1}, ints(c.Representative()))

	d, err := s.l.Coset(zz(-1, -2))
	s.Require().NoError(err)
	s.True(c.Equal(d))

	ok, err := c.Contains(zz(3, 4))
	s.Require().NoError(err)
	s.True(ok)
	ok, err = c.Contains(zz(2, 4))
	s.Require().NoError(err)
	s.False(ok)

	e, err := s.l.Coset(zz(0, 1))
	s.Require().NoError(err)
	s.False(c.Equal(e))

	sum, err := c.Add(e)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2}, ints(sum.Representative()))
}

func (s *SubmoduleSuite) TestAffineSpan() {
	a, err := s.m.AffineSpan(zz(1, 1), zz(3, 1), zz(1, 4))
	s.Require().NoError(err)
	s.False(a.IsEmpty())
	s.Equal(2, a.Dimension())

	c, ok := a.Coset()
	s.Require().True(ok)
	s.True(c.Submodule().Equal(s.l))
	s.Equal([]int64{1, 1}, ints(c.Representative()))

	b, err := s.m.AffineSpan(zz(5, 7), zz(7, 7), zz(5, 10), zz(3, 4))
	s.Require().NoError(err)
	s.True(a.Equal(b))

	point, err := s.m.AffineSpan(zz(2, 2))
	s.Require().NoError(err)
	s.Equal(0, point.Dimension())
	ok, err = point.Contains(zz(2, 2))
	s.Require().NoError(err)
	s.True(ok)

	empty, err := s.m.AffineSpan()
	s.Require().NoError(err)
	s.True(empty.IsEmpty())
	s.Equal(-1, empty.Dimension())
	s.True(empty.Equal(s.m.EmptyAffineSubset()))
	s.False(empty.Equal(a))
	ok, err = empty.Contains(zz(0, 0))
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.m.AffineSpan(zz(1, 1), zz(1))
	s.ErrorIs(err, module.ErrLengthMismatch)
}

func TestSubmoduleSuite(t *testing.T) {
	suite.Run(t, new(SubmoduleSuite))
}

func TestRowSpanOverRationals(t *testing.T) {
	m := module.New[*big.Rat](ring.Q, 3)
	gen, err := matrix.FromRows(3, [][]*big.Rat{
		{big.NewRat(2, 1), big.NewRat(4, 1), big.NewRat(1, 1)},
		{big.NewRat(1, 1), big.NewRat(2, 1), big.NewRat(0, 1)},
	})
	require.NoError(t, err)
	s, err := m.MatrixRowSpan(gen)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Rank())
	assert.Equal(t, []int{0, 2}, s.Pivots())

	// Over a field every coset of a submodule is reduced to zero on pivots.
	c, err := s.Coset([]*big.Rat{big.NewRat(3, 1), big.NewRat(1, 2), big.NewRat(5, 1)})
	require.NoError(t, err)
	rep := c.Representative()
	assert.Equal(t, "0", rep[0].RatString())
	assert.Equal(t, "-11/2", rep[1].RatString())
	assert.Equal(t, "0", rep[2].RatString())
}

func TestRowSpanErrors(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 2)
	_, err := m.MatrixRowSpan(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	wide, err := matrix.FromRows(3, [][]*big.Int{zz(1, 2, 3)})
	require.NoError(t, err)
	_, err = m.MatrixRowSpan(wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.GeneratedSubmodule(zz(1, 2), zz(3))
	assert.ErrorIs(t, err, module.ErrLengthMismatch)

	spy := &spyRing{}
	_, err = module.New[int64](spy, 2).ZeroSubmodule()
	assert.ErrorIs(t, err, module.ErrNoCanonicalReduction)
}

func TestZeroSubmodule(t *testing.T) {
	m := module.New[*big.Int](ring.Z, 2)
	z, err := m.ZeroSubmodule()
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rank())
	ok, err := z.Contains(zz(0, 0))
	require.NoError(t, err)
	assert.True(t, ok)

	c, err := z.Coset(zz(3, -4))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -4}, ints(c.Representative()))
}
