package morphism

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/ring"
)

// RangeModule is the range of a homomorphism h regarded as a module over
// h.Domain(): scalar_mul(v, s) = range.Mul(h.Image(s), v).
type RangeModule[D, R any] struct {
	h Homomorphism[D, R]
}

var _ module.Module[int, int] = (*RangeModule[int, int])(nil)

// RangeModuleOf returns the module view of h.
func RangeModuleOf[D, R any](h Homomorphism[D, R]) *RangeModule[D, R] {
	return &RangeModule[D, R]{h: h}
}

// Homomorphism returns the underlying homomorphism.
func (m *RangeModule[D, R]) Homomorphism() Homomorphism[D, R] { return m.h }

// Ring returns the scalar ring, h.Domain().
func (m *RangeModule[D, R]) Ring() ring.Ring[D] { return m.h.Domain() }

// IsElement checks range membership; failures match module.ErrNotInRing.
func (m *RangeModule[D, R]) IsElement(v R) error {
	if err := m.h.Range().IsElement(v); err != nil {
		return fmt.Errorf("%w: %w", module.ErrNotInRing, err)
	}

	return nil
}

// Equal is range equality.
func (m *RangeModule[D, R]) Equal(v, w R) bool { return m.h.Range().Equal(v, w) }

// Zero is the range zero.
func (m *RangeModule[D, R]) Zero() R { return m.h.Range().Zero() }

// Add is range addition.
func (m *RangeModule[D, R]) Add(v, w R) (R, error) {
	var zero R
	if err := m.IsElement(v); err != nil {
		return zero, err
	}
	if err := m.IsElement(w); err != nil {
		return zero, err
	}

	return m.h.Range().Add(v, w), nil
}

// Neg is range negation.
func (m *RangeModule[D, R]) Neg(v R) (R, error) {
	if err := m.IsElement(v); err != nil {
		var zero R
		return zero, err
	}

	return m.h.Range().Neg(v), nil
}

// ScalarMul returns Image(s)·v.
// Errors: module.ErrNotInRing when v is not a range element or s is not a domain element.
func (m *RangeModule[D, R]) ScalarMul(v R, s D) (R, error) {
	var zero R
	if err := m.IsElement(v); err != nil {
		return zero, err
	}
	if err := m.h.Domain().IsElement(s); err != nil {
		return zero, fmt.Errorf("scalar: %w: %w", module.ErrNotInRing, err)
	}

	return m.h.Range().Mul(m.h.Image(s), v), nil
}

// FiniteFreeExtension is an injective homomorphism whose range is a finite
// free module over the domain with a known basis.
type FiniteFreeExtension[D, R any] interface {
	Injective[D, R]
	FiniteRangeModule() module.FiniteFree[D, R]
}

// BasedExtension is an Injective homomorphism with a verified basis of its
// range over its domain.
type BasedExtension[D, R any] struct {
	Injective[D, R]
	view *FiniteRangeModule[D, R]
}

var _ FiniteFreeExtension[int, int] = (*BasedExtension[int, int])(nil)

// FiniteRangeModule is the RangeModule of a BasedExtension together with its basis.
type FiniteRangeModule[D, R any] struct {
	RangeModule[D, R]
	basis  []R
	coords func(R) []D
}

var _ module.FiniteFree[int, int] = (*FiniteRangeModule[int, int])(nil)

// WithBasis attaches basis to h. coords must return the coordinates of a range
// element in that basis.
// MAIN DESCRIPTION:
//   - The range must be a free module over the domain with the given basis:
//     r = Σ Image(coords(r)_i)·basis_i for every r.
//
// Implementation:
//   - Stage 1: every basis element is a range element.
//   - Stage 2: coords(basis_i) is the i-th unit vector of D^n.
//
// Only the basis is verified; coords is trusted on other inputs.
//
// Errors:
//   - ErrInvalidBasis (wrapping the membership error or naming the bad index).
func WithBasis[D, R any](h Injective[D, R], basis []R, coords func(R) []D) (*BasedExtension[D, R], error) {
	if coords == nil {
		return nil, fmt.Errorf("morphism.WithBasis: nil coords: %w", ErrInvalidBasis)
	}
	n := len(basis)
	dom := h.Domain()
	unit := module.New(dom, n)
	for i, b := range basis {
		if err := h.Range().IsElement(b); err != nil {
			return nil, fmt.Errorf("morphism.WithBasis: basis[%d]: %w: %w", i, ErrInvalidBasis, err)
		}
		e, _ := unit.BasisElement(i) // i < n
		if c := coords(b); !unit.Equal(c, e) {
			return nil, fmt.Errorf("morphism.WithBasis: coords(basis[%d]) = %v, want %v: %w",
				i, c, e, ErrInvalidBasis)
		}
	}
	view := &FiniteRangeModule[D, R]{
		RangeModule: RangeModule[D, R]{h: h},
		basis:       append([]R(nil), basis...),
		coords:      coords,
	}

	return &BasedExtension[D, R]{Injective: h, view: view}, nil
}

// FiniteRangeModule returns the finite free module view.
func (e *BasedExtension[D, R]) FiniteRangeModule() module.FiniteFree[D, R] { return e.view }

// Basis returns a copy of the basis.
func (e *BasedExtension[D, R]) Basis() []R { return e.view.BasisVecs() }

// Rank returns the basis size.
func (m *FiniteRangeModule[D, R]) Rank() int { return len(m.basis) }

// BasisVecs returns a copy of the basis.
func (m *FiniteRangeModule[D, R]) BasisVecs() []R { return append([]R(nil), m.basis...) }

// ToVec returns the coordinates of v.
// Errors: module.ErrNotInRing; module.ErrLengthMismatch when coords misbehaves.
func (m *FiniteRangeModule[D, R]) ToVec(v R) ([]D, error) {
	if err := m.IsElement(v); err != nil {
		return nil, fmt.Errorf("ToVec: %w", err)
	}
	c := m.coords(v)
	if err := module.New(m.h.Domain(), len(m.basis)).IsElement(c); err != nil {
		return nil, fmt.Errorf("ToVec: coordinates of %v: %w", v, err)
	}

	return c, nil
}

// FromVec returns Σ Image(c_i)·basis_i.
// Errors: those of IsElement on c as an element of D^n.
func (m *FiniteRangeModule[D, R]) FromVec(c []D) (R, error) {
	if err := module.New(m.h.Domain(), len(m.basis)).IsElement(c); err != nil {
		var zero R
		return zero, fmt.Errorf("FromVec: %w", err)
	}
	rng := m.h.Range()
	acc := rng.Zero()
	for i, b := range m.basis {
		acc = rng.Add(acc, rng.Mul(m.h.Image(c[i]), b))
	}

	return acc, nil
}
