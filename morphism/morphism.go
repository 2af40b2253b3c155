// Package morphism models ring homomorphisms and the module structure they
// induce on their range.
//
// 🚀 What is here?
//
//   - Homomorphism[D, R] / Injective[D, R]: the contracts; Map and InjectiveMap
//     are the function-backed implementations returned by New and NewInjective.
//   - Compose / ComposeInjective: pointwise composition with a ring check.
//   - RangeModule: the range regarded as a module over the domain,
//     scalar_mul(a, r) = range.Mul(image(a), r).
//   - WithBasis: attach a verified finite basis, producing a FiniteFreeExtension
//     whose range view is a module.FiniteFree. This is what package extension consumes.
//   - The canonical inclusions Z → R and Q → K.
//
// Homomorphism laws (preserving 0, 1, + and ·) are trusted, not checked per call.
package morphism

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

var (
	// ErrRingMismatch is wrapped by the panic value of a composition whose
	// inner range is not the outer domain.
	ErrRingMismatch = errors.New("morphism: ring mismatch")

	// ErrInvalidBasis indicates a basis rejected by WithBasis.
	ErrInvalidBasis = errors.New("morphism: invalid basis")
)

// Homomorphism is a ring homomorphism Domain() → Range().
type Homomorphism[D, R any] interface {
	Domain() ring.Ring[D]
	Range() ring.Ring[R]
	Image(a D) R
}

// Injective is a Homomorphism with a partial inverse on its image.
type Injective[D, R any] interface {
	Homomorphism[D, R]
	// TryPreimage returns the unique a with Image(a) == r, or false when r is
	// not in the image.
	TryPreimage(r R) (D, bool)
}

// Map is a function-backed Homomorphism.
type Map[D, R any] struct {
	domain ring.Ring[D]
	rng    ring.Ring[R]
	image  func(D) R
}

// InjectiveMap is a function-backed Injective homomorphism.
type InjectiveMap[D, R any] struct {
	Map[D, R]
	preimage func(R) (D, bool)
}

// Compile-time interface conformance.
var (
	_ Homomorphism[int, int] = (*Map[int, int])(nil)
	_ Injective[int, int]    = (*InjectiveMap[int, int])(nil)
)

// New returns the homomorphism domain → rng given by image.
// It panics on nil arguments.
func New[D, R any](domain ring.Ring[D], rng ring.Ring[R], image func(D) R) *Map[D, R] {
	if domain == nil || rng == nil || image == nil {
		panic("morphism.New: nil domain, range or image")
	}

	return &Map[D, R]{domain: domain, rng: rng, image: image}
}

// NewInjective returns an injective homomorphism with the given partial inverse.
func NewInjective[D, R any](domain ring.Ring[D], rng ring.Ring[R], image func(D) R,
	preimage func(R) (D, bool)) *InjectiveMap[D, R] {
	if preimage == nil {
		panic("morphism.NewInjective: nil preimage")
	}

	return &InjectiveMap[D, R]{Map: *New(domain, rng, image), preimage: preimage}
}

// Identity returns the identity homomorphism of r.
func Identity[E any](r ring.Ring[E]) *InjectiveMap[E, E] {
	return NewInjective(r, r,
		func(a E) E { return a },
		func(a E) (E, bool) { return a, true })
}

// Domain returns the domain ring.
func (m *Map[D, R]) Domain() ring.Ring[D] { return m.domain }

// Range returns the range ring.
func (m *Map[D, R]) Range() ring.Ring[R] { return m.rng }

// Image returns the image of a.
func (m *Map[D, R]) Image(a D) R { return m.image(a) }

// String renders "domain -> range".
func (m *Map[D, R]) String() string { return fmt.Sprintf("%v -> %v", m.domain, m.rng) }

// TryPreimage returns the unique preimage of r, if any.
func (m *InjectiveMap[D, R]) TryPreimage(r R) (D, bool) { return m.preimage(r) }

// mustChain panics unless the range of the first map is the domain of the second.
func mustChain(op string, rng, domain any) {
	if !ring.Same(rng, domain) {
		panic(fmt.Errorf("morphism.%s: range %v is not domain %v: %w", op, rng, domain, ErrRingMismatch))
	}
}

// Compose returns g∘f: a ↦ g(f(a)).
// It panics with an error wrapping ErrRingMismatch when f.Range() is not g.Domain().
func Compose[A, B, C any](f Homomorphism[A, B], g Homomorphism[B, C]) *Map[A, C] {
	mustChain("Compose", f.Range(), g.Domain())

	return New(f.Domain(), g.Range(), func(a A) C { return g.Image(f.Image(a)) })
}

// ComposeInjective returns g∘f with preimage f⁻¹∘g⁻¹.
// It panics like Compose.
func ComposeInjective[A, B, C any](f Injective[A, B], g Injective[B, C]) *InjectiveMap[A, C] {
	mustChain("ComposeInjective", f.Range(), g.Domain())

	return NewInjective(f.Domain(), g.Range(),
		func(a A) C { return g.Image(f.Image(a)) },
		func(c C) (A, bool) {
			b, ok := g.TryPreimage(c)
			if !ok {
				var zero A
				return zero, false
			}
			return f.TryPreimage(b)
		})
}
