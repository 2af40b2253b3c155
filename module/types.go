package module

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// Module is a module over the scalar ring S with elements of type V.
//
// Arithmetic returns an error when an operand fails IsElement; Equal assumes
// both operands are elements.
type Module[S, V any] interface {
	Ring() ring.Ring[S]
	IsElement(v V) error
	Equal(v, w V) bool
	Zero() V
	Add(v, w V) (V, error)
	Neg(v V) (V, error)
	ScalarMul(v V, s S) (V, error)
}

// FiniteFree is a Module with a fixed finite basis.
//
//   - BasisVecs returns the Rank() basis elements in index order.
//   - ToVec returns the coordinates of v in that basis.
//   - FromVec is the inverse of ToVec.
type FiniteFree[S, V any] interface {
	Module[S, V]
	Rank() int
	BasisVecs() []V
	ToVec(v V) ([]S, error)
	FromVec(c []S) (V, error)
}

// FreeModule is the coordinate module R^rank. Elements are []E of length rank.
//
// FreeModule is an immutable value. Two descriptors describe the same module
// when their rings are the same ring (ring.Same) and their ranks agree; see SameAs.
type FreeModule[E any] struct {
	ring ring.Ring[E]
	rank int
}

// Compile-time interface conformance.
var _ FiniteFree[int, []int] = FreeModule[int]{}

// New returns the free module r^rank.
// It panics on a nil ring or a negative rank; both are programmer errors.
func New[E any](r ring.Ring[E], rank int) FreeModule[E] {
	if r == nil {
		panic(fmt.Errorf("module.New: nil ring: %w", ErrContractViolation))
	}
	if rank < 0 {
		panic(fmt.Errorf("module.New: negative rank %d: %w", rank, ErrContractViolation))
	}

	return FreeModule[E]{ring: r, rank: rank}
}

// Underlying returns the coordinate module with the ring and rank of m.
// Coordinates produced by m.ToVec are elements of it.
func Underlying[S, V any](m FiniteFree[S, V]) FreeModule[S] {
	return New(m.Ring(), m.Rank())
}

// BasisImages returns, for every basis element b_i of dom, the coordinates of
// f(b_i) in rng. The result is the column list of the matrix of f.
func BasisImages[S, V, W any](dom FiniteFree[S, V], rng FiniteFree[S, W], f func(V) W) ([][]S, error) {
	basis := dom.BasisVecs()
	cols := make([][]S, len(basis))
	for i, b := range basis {
		img := f(b)
		if err := rng.IsElement(img); err != nil {
			return nil, moduleErrorf(fmt.Sprintf("BasisImages[%d]", i), err)
		}
		c, err := rng.ToVec(img)
		if err != nil {
			return nil, moduleErrorf(fmt.Sprintf("BasisImages[%d]", i), err)
		}
		cols[i] = c
	}

	return cols, nil
}
