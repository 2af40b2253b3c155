package module

import (
	"fmt"
)

const (
	opCosetAdd = "Coset.Add"
	opAffine   = "AffineSpan"
)

// Coset is rep + S for a Submodule S. The representative is always the
// canonical reduction of rep modulo S, so equal cosets carry equal representatives.
type Coset[E any] struct {
	sub *Submodule[E]
	rep []E
}

// Submodule returns the linear part.
func (c *Coset[E]) Submodule() *Submodule[E] { return c.sub }

// Representative returns a copy of the canonical representative.
func (c *Coset[E]) Representative() []E { return append([]E(nil), c.rep...) }

// Contains reports whether v − rep lies in the submodule.
// Errors: those of IsElement.
func (c *Coset[E]) Contains(v []E) (bool, error) {
	r, err := c.sub.Reduce(v)
	if err != nil {
		return false, err
	}

	return c.sub.ambient.Equal(r, c.rep), nil
}

// Equal reports whether c and d are the same subset.
func (c *Coset[E]) Equal(d *Coset[E]) bool {
	return c.sub.Equal(d.sub) && c.sub.ambient.Equal(c.rep, d.rep)
}

// Add returns the Minkowski sum (c.rep + d.rep) + (c.S + d.S).
// Errors: ErrModuleMismatch.
func (c *Coset[E]) Add(d *Coset[E]) (*Coset[E], error) {
	sum, err := c.sub.Sum(d.sub)
	if err != nil {
		return nil, moduleErrorf(opCosetAdd, err)
	}
	rep, err := c.sub.ambient.Add(c.rep, d.rep)
	if err != nil {
		return nil, moduleErrorf(opCosetAdd, err)
	}

	return sum.Coset(rep)
}

// AffineSubset returns c viewed as a non-empty affine subset.
func (c *Coset[E]) AffineSubset() AffineSubset[E] {
	return AffineSubset[E]{module: c.sub.ambient, coset: c}
}

// String renders "rep + <submodule>".
func (c *Coset[E]) String() string {
	return fmt.Sprintf("%v + %v", c.rep, c.sub)
}

// AffineSubset is either empty or a Coset. The zero value is not usable; build
// one with EmptyAffineSubset, AffineSpan or Coset.AffineSubset.
type AffineSubset[E any] struct {
	module FreeModule[E]
	coset  *Coset[E] // nil when empty
}

// EmptyAffineSubset returns the empty subset of m.
func (m FreeModule[E]) EmptyAffineSubset() AffineSubset[E] {
	return AffineSubset[E]{module: m}
}

// AffineSpan returns the smallest coset containing every point: the submodule
// generated by p_i − p_0, translated by p_0. No points yields the empty subset.
// Errors: those of IsElement for the first invalid point, ErrNoCanonicalReduction.
func (m FreeModule[E]) AffineSpan(points ...[]E) (AffineSubset[E], error) {
	if len(points) == 0 {
		return m.EmptyAffineSubset(), nil
	}
	if err := m.IsElement(points[0]); err != nil {
		return AffineSubset[E]{}, moduleErrorf(opAffine, fmt.Errorf("point 0: %w", err))
	}
	dirs := make([][]E, 0, len(points)-1)
	for i, p := range points[1:] {
		d, err := m.Sub(p, points[0])
		if err != nil {
			return AffineSubset[E]{}, moduleErrorf(opAffine, fmt.Errorf("point %d: %w", i+1, err))
		}
		dirs = append(dirs, d)
	}
	sub, err := m.GeneratedSubmodule(dirs...)
	if err != nil {
		return AffineSubset[E]{}, moduleErrorf(opAffine, err)
	}
	c, err := sub.Coset(points[0])
	if err != nil {
		return AffineSubset[E]{}, moduleErrorf(opAffine, err)
	}

	return c.AffineSubset(), nil
}

// Module returns the ambient free module.
func (a AffineSubset[E]) Module() FreeModule[E] { return a.module }

// IsEmpty reports whether a has no points.
func (a AffineSubset[E]) IsEmpty() bool { return a.coset == nil }

// Coset returns the underlying coset, or (nil, false) when a is empty.
func (a AffineSubset[E]) Coset() (*Coset[E], bool) { return a.coset, a.coset != nil }

// Dimension returns the rank of the linear part, or -1 when a is empty.
func (a AffineSubset[E]) Dimension() int {
	if a.coset == nil {
		return -1
	}

	return a.coset.sub.Rank()
}

// Contains reports whether v lies in a. The empty subset contains nothing but
// still validates v.
func (a AffineSubset[E]) Contains(v []E) (bool, error) {
	if a.coset == nil {
		return false, a.module.IsElement(v)
	}

	return a.coset.Contains(v)
}

// Equal reports whether a and b are the same subset of the same module.
func (a AffineSubset[E]) Equal(b AffineSubset[E]) bool {
	if !a.module.SameAs(b.module) {
		return false
	}
	if a.coset == nil || b.coset == nil {
		return a.coset == nil && b.coset == nil
	}

	return a.coset.Equal(b.coset)
}
