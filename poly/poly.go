// Package poly provides the univariate polynomial result type returned by
// minimal-polynomial computations. It is deliberately small: a coefficient
// sequence over a ring descriptor, with evaluation and printing.
package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/ring"
)

// Polynomial is c[0] + c[1]·x + ... + c[n]·x^n over a ring descriptor.
// Trailing zero coefficients are trimmed, so the zero polynomial has no coefficients.
type Polynomial[E any] struct {
	ring   ring.Ring[E]
	coeffs []E // low → high, last entry non-zero
}

// New builds a polynomial from coefficients in increasing degree order.
// The slice is copied.
func New[E any](r ring.Ring[E], coeffs []E) Polynomial[E] {
	n := len(coeffs)
	for n > 0 && ring.IsZero(r, coeffs[n-1]) {
		n--
	}
	c := make([]E, n)
	copy(c, coeffs[:n])

	return Polynomial[E]{ring: r, coeffs: c}
}

// Ring returns the coefficient ring.
func (p Polynomial[E]) Ring() ring.Ring[E] { return p.ring }

// Coeffs returns a copy of the coefficients, lowest degree first.
func (p Polynomial[E]) Coeffs() []E {
	out := make([]E, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// Degree returns the degree, or -1 for the zero polynomial.
func (p Polynomial[E]) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of x^i (zero outside the stored range).
func (p Polynomial[E]) Coeff(i int) E {
	if i < 0 || i >= len(p.coeffs) {
		return p.ring.Zero()
	}

	return p.coeffs[i]
}

// IsMonic reports whether the leading coefficient is one.
func (p Polynomial[E]) IsMonic() bool {
	if len(p.coeffs) == 0 {
		return false
	}

	return p.ring.Equal(p.coeffs[len(p.coeffs)-1], p.ring.One())
}

// Equal compares coefficient sequences with the ring's equality.
func (p Polynomial[E]) Equal(q Polynomial[E]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.ring.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}

	return true
}

// Evaluate computes p(x) by Horner's rule.
func (p Polynomial[E]) Evaluate(x E) E {
	acc := p.ring.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.ring.Add(p.ring.Mul(acc, x), p.coeffs[i])
	}

	return acc
}

// EvaluateIn evaluates p at a point of another ring R, mapping each
// coefficient through embed (typically a ring homomorphism's Image).
func EvaluateIn[E, R any](p Polynomial[E], target ring.Ring[R], embed func(E) R, x R) R {
	acc := target.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = target.Add(target.Mul(acc, x), embed(p.coeffs[i]))
	}

	return acc
}

// String renders the polynomial highest degree first, e.g. "x^2 + -2".
func (p Polynomial[E]) String() string {
	if len(p.coeffs) == 0 {
		return "0"
	}
	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if ring.IsZero(p.ring, c) {
			continue
		}
		switch {
		case i == 0:
			terms = append(terms, fmt.Sprint(c))
		case p.ring.Equal(c, p.ring.One()):
			terms = append(terms, monomial(i))
		default:
			terms = append(terms, fmt.Sprintf("%v%s", c, monomial(i)))
		}
	}

	return strings.Join(terms, " + ")
}

func monomial(i int) string {
	if i == 1 {
		return "x"
	}

	return fmt.Sprintf("x^%d", i)
}
