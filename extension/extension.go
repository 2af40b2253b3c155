// Package extension derives the invariants of a finite ring extension
// h: D → R whose range is a free D-module with a known basis.
//
// Every invariant goes through the regular representation: the matrix of
// "multiply by a" on the basis, with entries in D. Norm, trace and minimal
// polynomial are then the determinant, trace and minimal polynomial of that
// matrix, computed exactly by package matrix.
//
// Capabilities of the domain ring gate the heavier invariants:
//
//	Norm, Discriminant  need ring.IntegralDomain (fraction-free determinant)
//	MinPoly             needs ring.EuclideanDomain (exact Krylov solve)
//
// A missing capability yields ErrMissingCapability.
package extension

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/module"
	"github.com/katalvlaran/lvlalg/morphism"
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/ring"
)

var (
	// ErrMissingCapability indicates a domain ring without the capability an invariant needs.
	ErrMissingCapability = errors.New("extension: domain ring lacks a required capability")

	// ErrElementCount indicates a trace form built from a number of elements other than Degree().
	ErrElementCount = errors.New("extension: element count must equal the degree")
)

const (
	opColMul       = "ColMultiplicationMatrix"
	opRowMul       = "RowMultiplicationMatrix"
	opNorm         = "Norm"
	opTrace        = "Trace"
	opMinPoly      = "MinPoly"
	opTraceForm    = "TraceFormMatrix"
	opDiscriminant = "Discriminant"
)

// Extension computes invariants of a FiniteFreeExtension. Immutable; safe for
// concurrent use when the underlying rings are.
type Extension[D, R any] struct {
	h    morphism.FiniteFreeExtension[D, R]
	view module.FiniteFree[D, R]
}

// Of returns the invariant calculator for h.
func Of[D, R any](h morphism.FiniteFreeExtension[D, R]) *Extension[D, R] {
	return &Extension[D, R]{h: h, view: h.FiniteRangeModule()}
}

// Homomorphism returns the underlying extension.
func (e *Extension[D, R]) Homomorphism() morphism.FiniteFreeExtension[D, R] { return e.h }

// Degree returns the rank of the range over the domain.
func (e *Extension[D, R]) Degree() int { return e.view.Rank() }

// ColMultiplicationMatrix returns the Degree()×Degree() matrix whose i-th
// column is the coordinate vector of a·basis[i].
// Errors: module.ErrNotInRing when a is not a range element; coordinate errors.
// Complexity: Degree() range multiplications and coordinate extractions.
func (e *Extension[D, R]) ColMultiplicationMatrix(a R) (*matrix.Dense[D], error) {
	if err := e.view.IsElement(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opColMul, err)
	}
	rng := e.h.Range()
	cols, err := module.BasisImages(e.view, e.view, func(b R) R { return rng.Mul(a, b) })
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opColMul, err)
	}

	return matrix.FromCols(e.Degree(), cols)
}

// RowMultiplicationMatrix is the transpose of ColMultiplicationMatrix.
func (e *Extension[D, R]) RowMultiplicationMatrix(a R) (*matrix.Dense[D], error) {
	m, err := e.ColMultiplicationMatrix(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRowMul, err)
	}

	return matrix.Transpose(m)
}

// Norm returns det of the multiplication matrix of a.
// Errors: ErrMissingCapability unless the domain is a ring.IntegralDomain.
func (e *Extension[D, R]) Norm(a R) (D, error) {
	var zero D
	d, ok := e.h.Domain().(ring.IntegralDomain[D])
	if !ok {
		return zero, fmt.Errorf("%s: %v: %w", opNorm, e.h.Domain(), ErrMissingCapability)
	}
	m, err := e.ColMultiplicationMatrix(a)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", opNorm, err)
	}

	return matrix.Determinant(d, m)
}

// Trace returns the trace of the multiplication matrix of a.
func (e *Extension[D, R]) Trace(a R) (D, error) {
	var zero D
	m, err := e.ColMultiplicationMatrix(a)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", opTrace, err)
	}

	return matrix.Trace(e.h.Domain(), m)
}

// MinPoly returns the monic minimal polynomial of a over the domain.
// Errors: ErrMissingCapability unless the domain is a ring.EuclideanDomain.
func (e *Extension[D, R]) MinPoly(a R) (poly.Polynomial[D], error) {
	ed, ok := e.h.Domain().(ring.EuclideanDomain[D])
	if !ok {
		return poly.Polynomial[D]{}, fmt.Errorf("%s: %v: %w", opMinPoly, e.h.Domain(), ErrMissingCapability)
	}
	m, err := e.ColMultiplicationMatrix(a)
	if err != nil {
		return poly.Polynomial[D]{}, fmt.Errorf("%s: %w", opMinPoly, err)
	}

	return matrix.MinimalPolynomial(ed, m)
}

// TraceFormMatrix returns the Gram matrix T[i][j] = Trace(elems[i]·elems[j]).
// Errors: ErrElementCount unless len(elems) == Degree(); those of Trace.
// Complexity: Degree()² traces; the matrix is symmetric, so only i <= j is computed.
func (e *Extension[D, R]) TraceFormMatrix(elems []R) (*matrix.Dense[D], error) {
	n := e.Degree()
	if len(elems) != n {
		return nil, fmt.Errorf("%s: got %d elements, degree %d: %w", opTraceForm, len(elems), n, ErrElementCount)
	}
	rng := e.h.Range()
	tr := make([][]D, n)
	for i := range tr {
		tr[i] = make([]D, n)
	}
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			t, err := e.Trace(rng.Mul(elems[i], elems[j]))
			if err != nil {
				return nil, fmt.Errorf("%s[%d,%d]: %w", opTraceForm, i, j, err)
			}
			tr[i][j], tr[j][i] = t, t
		}
	}

	return matrix.FromRows(n, tr)
}

// Discriminant returns det(TraceFormMatrix(elems)).
// Errors: ErrMissingCapability unless the domain is a ring.IntegralDomain; those of TraceFormMatrix.
func (e *Extension[D, R]) Discriminant(elems []R) (D, error) {
	var zero D
	d, ok := e.h.Domain().(ring.IntegralDomain[D])
	if !ok {
		return zero, fmt.Errorf("%s: %v: %w", opDiscriminant, e.h.Domain(), ErrMissingCapability)
	}
	g, err := e.TraceFormMatrix(elems)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", opDiscriminant, err)
	}

	return matrix.Determinant(d, g)
}
