// Package quadratic provides the quadratic rings R[√d] = R ⊕ R·√d over a base
// ring R. They are small, exact extension rings used to exercise homomorphism
// views and extension invariants (Gaussian integers Z[i], Q(√2), ...).
package quadratic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlalg/ring"
)

// ErrNotElement indicates an element with an invalid component.
var ErrNotElement = errors.New("quadratic: invalid component")

// Elem is A + B·√d.
type Elem[E any] struct{ A, B E }

// Ring is R[√d]. d must not be a square in R for the ring to be a domain;
// this is not checked.
type Ring[E any] struct {
	base ring.Ring[E]
	d    E
	name string
}

// New returns base[√d] printed as name.
func New[E any](base ring.Ring[E], d int64, name string) *Ring[E] {
	return &Ring[E]{base: base, d: base.FromInt(big.NewInt(d)), name: name}
}

// Base returns the coefficient ring.
func (q *Ring[E]) Base() ring.Ring[E] { return q.base }

// Of builds a + b·√d.
func (q *Ring[E]) Of(a, b E) Elem[E] { return Elem[E]{A: a, B: b} }

// Sqrt returns √d.
func (q *Ring[E]) Sqrt() Elem[E] { return Elem[E]{A: q.base.Zero(), B: q.base.One()} }

func (q *Ring[E]) String() string  { return q.name }
func (q *Ring[E]) Zero() Elem[E]   { return Elem[E]{A: q.base.Zero(), B: q.base.Zero()} }
func (q *Ring[E]) One() Elem[E]    { return Elem[E]{A: q.base.One(), B: q.base.Zero()} }
func (q *Ring[E]) Neg(x Elem[E]) Elem[E] {
	return Elem[E]{A: q.base.Neg(x.A), B: q.base.Neg(x.B)}
}

func (q *Ring[E]) Add(x, y Elem[E]) Elem[E] {
	return Elem[E]{A: q.base.Add(x.A, y.A), B: q.base.Add(x.B, y.B)}
}

// Mul is (a + b√d)(c + e√d) = (ac + d·be) + (ae + bc)√d.
func (q *Ring[E]) Mul(x, y Elem[E]) Elem[E] {
	r := q.base
	return Elem[E]{
		A: r.Add(r.Mul(x.A, y.A), r.Mul(q.d, r.Mul(x.B, y.B))),
		B: r.Add(r.Mul(x.A, y.B), r.Mul(x.B, y.A)),
	}
}

func (q *Ring[E]) Equal(x, y Elem[E]) bool {
	return q.base.Equal(x.A, y.A) && q.base.Equal(x.B, y.B)
}

func (q *Ring[E]) IsElement(x Elem[E]) error {
	if err := q.base.IsElement(x.A); err != nil {
		return fmt.Errorf("%w: A: %w", ErrNotElement, err)
	}
	if err := q.base.IsElement(x.B); err != nil {
		return fmt.Errorf("%w: B: %w", ErrNotElement, err)
	}

	return nil
}

func (q *Ring[E]) FromInt(n *big.Int) Elem[E] {
	return Elem[E]{A: q.base.FromInt(n), B: q.base.Zero()}
}

// TryToInt succeeds for rational-integer elements of a characteristic-zero base.
func (q *Ring[E]) TryToInt(x Elem[E]) (*big.Int, bool) {
	cz, ok := q.base.(ring.CharZeroRing[E])
	if !ok || !ring.IsZero[E](q.base, x.B) {
		return nil, false
	}

	return cz.TryToInt(x.A)
}

// Norm returns a² − d·b² in the base ring.
func (q *Ring[E]) Norm(x Elem[E]) E {
	r := q.base
	return ring.Sub[E](r, r.Mul(x.A, x.A), r.Mul(q.d, r.Mul(x.B, x.B)))
}

// Field is K(√d) over a characteristic-zero field K.
type Field[E any] struct {
	*Ring[E]
	k ring.CharZeroField[E]
}

var _ ring.CharZeroField[Elem[*big.Rat]] = (*Field[*big.Rat])(nil)

// NewField returns k(√d). d must not be a square in k.
func NewField[E any](k ring.CharZeroField[E], d int64, name string) *Field[E] {
	return &Field[E]{Ring: New[E](k, d, name), k: k}
}

// Inv is (a − b√d) / (a² − d·b²).
func (f *Field[E]) Inv(x Elem[E]) (Elem[E], bool) {
	n, ok := f.k.Inv(f.Norm(x))
	if !ok {
		return Elem[E]{}, false
	}

	return Elem[E]{A: f.k.Mul(x.A, n), B: f.k.Neg(f.k.Mul(x.B, n))}, true
}

func (f *Field[E]) Div(x, y Elem[E]) (Elem[E], bool) {
	inv, ok := f.Inv(y)
	if !ok {
		return Elem[E]{}, false
	}

	return f.Mul(x, inv), true
}

// QuoRem is exact division with a zero remainder.
func (f *Field[E]) QuoRem(x, y Elem[E]) (Elem[E], Elem[E]) {
	q, _ := f.Div(x, y)
	return q, f.Zero()
}

// CanonicalAssociate maps every non-zero element to one.
func (f *Field[E]) CanonicalAssociate(x Elem[E]) (Elem[E], Elem[E]) {
	inv, ok := f.Inv(x)
	if !ok {
		return f.Zero(), f.One()
	}

	return f.One(), inv
}

func (f *Field[E]) FromRat(x *big.Rat) Elem[E] {
	return Elem[E]{A: f.k.FromRat(x), B: f.k.Zero()}
}

func (f *Field[E]) TryToRat(x Elem[E]) (*big.Rat, bool) {
	if !ring.IsZero[E](f.k, x.B) {
		return nil, false
	}

	return f.k.TryToRat(x.A)
}
