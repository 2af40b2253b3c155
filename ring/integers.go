package ring

import "math/big"

// Integers is the descriptor of Z with *big.Int elements.
// The zero value is ready to use; all Integers values describe the same ring.
type Integers struct{}

// Z is the canonical integers descriptor.
var Z Integers

// Compile-time capability checks.
var (
	_ EuclideanDomain[*big.Int] = Integers{}
	_ CharZeroRing[*big.Int]    = Integers{}
)

func (Integers) String() string { return "Z" }

func (Integers) Zero() *big.Int { return new(big.Int) }

func (Integers) One() *big.Int { return big.NewInt(1) }

func (Integers) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (Integers) Neg(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

func (Integers) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (Integers) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (Integers) IsElement(a *big.Int) error {
	if a == nil {
		return ErrNotElement
	}

	return nil
}

func (Integers) FromInt(n *big.Int) *big.Int { return new(big.Int).Set(n) }

func (Integers) TryToInt(a *big.Int) (*big.Int, bool) { return new(big.Int).Set(a), true }

// Div returns a / b when b divides a exactly.
func (Integers) Div(a, b *big.Int) (*big.Int, bool) {
	if b.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}

	return q, true
}

// QuoRem performs Euclidean division: the remainder always lies in [0, |b|).
// That choice is what makes the Hermite normal form over Z unique.
func (Integers) QuoRem(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r)

	return q, r
}

// CanonicalAssociate returns (|a|, sign) with sign = ±1 (1 for zero).
func (Integers) CanonicalAssociate(a *big.Int) (*big.Int, *big.Int) {
	if a.Sign() < 0 {
		return new(big.Int).Neg(a), big.NewInt(-1)
	}

	return new(big.Int).Set(a), big.NewInt(1)
}
