package ring

import (
	"errors"
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotElement indicates that a value is not a valid element of the ring
	// (for the built-in descriptors: a nil pointer).
	ErrNotElement = errors.New("ring: value is not an element of the ring")
)

// Ring is the minimal descriptor contract. Implementations must return fresh
// values from every operation and never mutate their arguments.
type Ring[E any] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// Add returns a + b.
	Add(a, b E) E
	// Neg returns -a.
	Neg(a E) E
	// Mul returns a · b.
	Mul(a, b E) E
	// Equal reports whether a and b are the same ring element.
	Equal(a, b E) bool
	// IsElement returns nil when a is a valid element of the ring.
	IsElement(a E) error
	// FromInt returns the image of n under the unique map Z -> R.
	FromInt(n *big.Int) E
	// String names the ring, e.g. "Z".
	String() string
}

// CharZeroRing is a ring of characteristic zero, where Z -> R is injective.
type CharZeroRing[E any] interface {
	Ring[E]
	// TryToInt returns the unique integer n with FromInt(n) == a, if any.
	TryToInt(a E) (*big.Int, bool)
}

// IntegralDomain is a commutative ring without zero divisors.
type IntegralDomain[E any] interface {
	Ring[E]
	// Div returns q with q·b == a, or false if b does not divide a exactly.
	Div(a, b E) (E, bool)
}

// EuclideanDomain carries the canonical-reduction capability: every finitely
// generated submodule of R^n has a unique reduced basis (Hermite form).
type EuclideanDomain[E any] interface {
	IntegralDomain[E]
	// QuoRem returns (q, r) with a = q·b + r where r is the canonical
	// representative of a modulo b. b must be non-zero.
	QuoRem(a, b E) (q, r E)
	// CanonicalAssociate returns (c, u) where u is a unit and c = u·a is the
	// canonical representative of the associates of a. For a == 0 it returns (0, 1).
	CanonicalAssociate(a E) (c, u E)
}

// Field is a Euclidean domain where every non-zero element is invertible.
type Field[E any] interface {
	EuclideanDomain[E]
	// Inv returns a⁻¹, or false for a == 0.
	Inv(a E) (E, bool)
}

// CharZeroField is a field of characteristic zero; Q embeds uniquely into it.
type CharZeroField[E any] interface {
	Field[E]
	CharZeroRing[E]
	// FromRat returns the image of x under the unique map Q -> K.
	FromRat(x *big.Rat) E
	// TryToRat returns the unique rational x with FromRat(x) == a, if any.
	TryToRat(a E) (*big.Rat, bool)
}

// Sub returns a - b in r.
func Sub[E any](r Ring[E], a, b E) E { return r.Add(a, r.Neg(b)) }

// IsZero reports whether a equals r.Zero().
func IsZero[E any](r Ring[E], a E) bool { return r.Equal(a, r.Zero()) }

// FromInts lifts native integers into r, in order.
// Values of unsigned types above math.MaxInt64 wrap; pass *big.Int through FromInt instead.
func FromInts[E any, T constraints.Integer](r Ring[E], xs ...T) []E {
	out := make([]E, len(xs))
	for i, x := range xs {
		out[i] = r.FromInt(big.NewInt(int64(x)))
	}

	return out
}

// Same reports whether a and b describe the same underlying ring.
//
// A descriptor may implement SameAs(any) bool to define its own notion of
// sameness; otherwise two descriptors are the same when they have the same
// dynamic type and compare equal as values. Non-comparable descriptors without
// SameAs are never the same as anything (including themselves).
func Same(a, b any) bool {
	if s, ok := a.(interface{ SameAs(any) bool }); ok {
		return s.SameAs(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}

	return a == b
}
