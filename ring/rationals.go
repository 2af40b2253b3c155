package ring

import "math/big"

// Rationals is the descriptor of Q with *big.Rat elements.
type Rationals struct{}

// Q is the canonical rationals descriptor.
var Q Rationals

var _ CharZeroField[*big.Rat] = Rationals{}

func (Rationals) String() string { return "Q" }

func (Rationals) Zero() *big.Rat { return new(big.Rat) }

func (Rationals) One() *big.Rat { return big.NewRat(1, 1) }

func (Rationals) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Rationals) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Rationals) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rationals) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (Rationals) IsElement(a *big.Rat) error {
	if a == nil {
		return ErrNotElement
	}

	return nil
}

func (Rationals) FromInt(n *big.Int) *big.Rat { return new(big.Rat).SetInt(n) }

func (Rationals) TryToInt(a *big.Rat) (*big.Int, bool) {
	if !a.IsInt() {
		return nil, false
	}

	return new(big.Int).Set(a.Num()), true
}

func (Rationals) FromRat(x *big.Rat) *big.Rat { return new(big.Rat).Set(x) }

func (Rationals) TryToRat(a *big.Rat) (*big.Rat, bool) { return new(big.Rat).Set(a), true }

func (Rationals) Inv(a *big.Rat) (*big.Rat, bool) {
	if a.Sign() == 0 {
		return nil, false
	}

	return new(big.Rat).Inv(a), true
}

func (q Rationals) Div(a, b *big.Rat) (*big.Rat, bool) {
	inv, ok := q.Inv(b)
	if !ok {
		return nil, false
	}

	return inv.Mul(inv, a), true
}

// QuoRem divides exactly; in a field every remainder is zero.
func (q Rationals) QuoRem(a, b *big.Rat) (*big.Rat, *big.Rat) {
	quo, _ := q.Div(a, b)

	return quo, new(big.Rat)
}

// CanonicalAssociate maps every non-zero element to 1.
func (Rationals) CanonicalAssociate(a *big.Rat) (*big.Rat, *big.Rat) {
	if a.Sign() == 0 {
		return new(big.Rat), big.NewRat(1, 1)
	}

	return big.NewRat(1, 1), new(big.Rat).Inv(a)
}
