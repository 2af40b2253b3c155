package morphism

import (
	"math/big"

	"github.com/katalvlaran/lvlalg/ring"
)

// NewPrincipalSubringInclusion returns the unique homomorphism Z → r,
// n ↦ r.FromInt(n).
func NewPrincipalSubringInclusion[E any](r ring.Ring[E]) *Map[*big.Int, E] {
	return New[*big.Int, E](ring.Z, r, r.FromInt)
}

// NewCharZeroSubringInclusion returns Z → r for a ring of characteristic zero,
// where the inclusion is injective: TryPreimage is r.TryToInt.
func NewCharZeroSubringInclusion[E any](r ring.CharZeroRing[E]) *InjectiveMap[*big.Int, E] {
	return NewInjective[*big.Int, E](ring.Z, r, r.FromInt, r.TryToInt)
}

// NewPrincipalRationalSubfieldInclusion returns the unique homomorphism Q → k
// of a characteristic-zero field: image k.FromRat, TryPreimage k.TryToRat.
func NewPrincipalRationalSubfieldInclusion[E any](k ring.CharZeroField[E]) *InjectiveMap[*big.Rat, E] {
	return NewInjective[*big.Rat, E](ring.Q, k, k.FromRat, k.TryToRat)
}
