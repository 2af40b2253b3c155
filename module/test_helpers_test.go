// Package module_test contains helpers shared by the module test files.
package module_test

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/ring"
)

// zz lifts int64s into integer ring elements.
func zz(xs ...int64) []*big.Int { return ring.FromInts[*big.Int](ring.Z, xs...) }

// ints lowers integer ring elements for readable assertions.
func ints(v []*big.Int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = x.Int64()
	}

	return out
}

// requirePanicsWith runs f and requires a panic whose value is an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
}

// spyRing is the integers as int64, recording every delegated call.
// It implements only ring.Ring, so it has no canonical reduction.
type spyRing struct{ mock.Mock }

var _ ring.Ring[int64] = (*spyRing)(nil)

func (s *spyRing) Zero() int64 { return 0 }
func (s *spyRing) One() int64  { return 1 }

func (s *spyRing) Add(a, b int64) int64 {
	s.Called(a, b)
	return a + b
}

func (s *spyRing) Neg(a int64) int64 {
	s.Called(a)
	return -a
}

func (s *spyRing) Mul(a, b int64) int64 {
	s.Called(a, b)
	return a * b
}

func (s *spyRing) Equal(a, b int64) bool { return a == b }

func (s *spyRing) IsElement(a int64) error { return s.Called(a).Error(0) }

func (s *spyRing) FromInt(n *big.Int) int64 { return n.Int64() }

func (s *spyRing) String() string { return fmt.Sprintf("spy(%p)", s) }
