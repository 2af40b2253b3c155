// Package module - coordinatewise arithmetic and matrix bridges of FreeModule.
//
// Every operation validates its operands with IsElement and then delegates
// coordinate by coordinate to the ring. Results are fresh slices; operands are
// never mutated.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

const (
	opAdd       = "Add"
	opNeg       = "Neg"
	opSub       = "Sub"
	opScalarMul = "ScalarMul"
	opBasis     = "BasisElement"
	opToColumn  = "ToColumn"
	opFromCol   = "FromColumn"
	opToRow     = "ToRow"
	opFromRow   = "FromRow"
	opToVec     = "ToVec"
	opFromVec   = "FromVec"
)

// Ring returns the scalar ring.
func (m FreeModule[E]) Ring() ring.Ring[E] { return m.ring }

// Rank returns the number of coordinates.
func (m FreeModule[E]) Rank() int { return m.rank }

// String renders the module as "<ring>^<rank>", e.g. "Z^3".
func (m FreeModule[E]) String() string { return fmt.Sprintf("%v^%d", m.ring, m.rank) }

// SameAs reports whether other describes the same module: same underlying ring
// and same rank. other may be a FreeModule[E] or a *FreeModule[E].
func (m FreeModule[E]) SameAs(other any) bool {
	switch o := other.(type) {
	case FreeModule[E]:
		return m.rank == o.rank && ring.Same(m.ring, o.ring)
	case *FreeModule[E]:
		return o != nil && m.rank == o.rank && ring.Same(m.ring, o.ring)
	default:
		return false
	}
}

// IsElement checks the length of v and the ring membership of every component.
// Errors: ErrLengthMismatch (wrapped); *MembershipError for the first bad component.
// Complexity: O(rank) membership tests.
func (m FreeModule[E]) IsElement(v []E) error {
	if len(v) != m.rank {
		return fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(v), m.rank)
	}
	for i, x := range v {
		if err := m.ring.IsElement(x); err != nil {
			return &MembershipError{Index: i, Err: err}
		}
	}

	return nil
}

// Equal reports coordinatewise ring equality. Elements of different lengths are unequal.
func (m FreeModule[E]) Equal(v, w []E) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !m.ring.Equal(v[i], w[i]) {
			return false
		}
	}

	return true
}

// Zero returns the zero element.
func (m FreeModule[E]) Zero() []E {
	out := make([]E, m.rank)
	for i := range out {
		out[i] = m.ring.Zero()
	}

	return out
}

// Add returns v + w.
func (m FreeModule[E]) Add(v, w []E) ([]E, error) {
	if err := m.check2(v, w); err != nil {
		return nil, moduleErrorf(opAdd, err)
	}
	out := make([]E, m.rank)
	for i := range out {
		out[i] = m.ring.Add(v[i], w[i])
	}

	return out, nil
}

// Neg returns -v.
func (m FreeModule[E]) Neg(v []E) ([]E, error) {
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opNeg, err)
	}
	out := make([]E, m.rank)
	for i := range out {
		out[i] = m.ring.Neg(v[i])
	}

	return out, nil
}

// Sub returns v - w.
func (m FreeModule[E]) Sub(v, w []E) ([]E, error) {
	if err := m.check2(v, w); err != nil {
		return nil, moduleErrorf(opSub, err)
	}
	out := make([]E, m.rank)
	for i := range out {
		out[i] = ring.Sub(m.ring, v[i], w[i])
	}

	return out, nil
}

// ScalarMul returns s·v.
// Errors: those of IsElement; ErrNotInRing when s itself is not a ring element.
func (m FreeModule[E]) ScalarMul(v []E, s E) ([]E, error) {
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opScalarMul, err)
	}
	if err := m.ring.IsElement(s); err != nil {
		return nil, moduleErrorf(opScalarMul, fmt.Errorf("scalar: %w: %w", ErrNotInRing, err))
	}
	out := make([]E, m.rank)
	for i := range out {
		out[i] = m.ring.Mul(s, v[i])
	}

	return out, nil
}

// BasisElement returns e_i: one at position i, zero elsewhere.
// Errors: ErrOutOfRange for i outside [0, rank).
func (m FreeModule[E]) BasisElement(i int) ([]E, error) {
	if i < 0 || i >= m.rank {
		return nil, moduleErrorf(opBasis, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, m.rank))
	}
	out := m.Zero()
	out[i] = m.ring.One()

	return out, nil
}

// BasisVecs returns e_0, ..., e_(rank-1) in index order.
func (m FreeModule[E]) BasisVecs() [][]E {
	out := make([][]E, m.rank)
	for i := range out {
		out[i] = m.Zero()
		out[i][i] = m.ring.One()
	}

	return out
}

// ToVec returns a validated copy of v; the standard basis makes coordinates
// and components coincide.
func (m FreeModule[E]) ToVec(v []E) ([]E, error) {
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opToVec, err)
	}

	return append([]E(nil), v...), nil
}

// FromVec is the inverse of ToVec.
func (m FreeModule[E]) FromVec(c []E) ([]E, error) {
	if err := m.IsElement(c); err != nil {
		return nil, moduleErrorf(opFromVec, err)
	}

	return append([]E(nil), c...), nil
}

// ToColumn returns v as a rank×1 matrix.
func (m FreeModule[E]) ToColumn(v []E) (*matrix.Dense[E], error) {
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opToColumn, err)
	}

	return matrix.FromCols(m.rank, [][]E{v})
}

// FromColumn reads an element back from a rank×1 matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, or those of IsElement.
func (m FreeModule[E]) FromColumn(c *matrix.Dense[E]) ([]E, error) {
	if err := matrix.ValidateNotNil(c); err != nil {
		return nil, moduleErrorf(opFromCol, err)
	}
	if c.Rows() != m.rank || c.Cols() != 1 {
		return nil, moduleErrorf(opFromCol, fmt.Errorf("shape %dx%d, want %dx1: %w",
			c.Rows(), c.Cols(), m.rank, matrix.ErrDimensionMismatch))
	}
	v, _ := c.Col(0) // shape checked
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opFromCol, err)
	}

	return v, nil
}

// ToRow returns v as a 1×rank matrix.
func (m FreeModule[E]) ToRow(v []E) (*matrix.Dense[E], error) {
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opToRow, err)
	}

	return matrix.FromRows(m.rank, [][]E{v})
}

// FromRow reads an element back from a 1×rank matrix.
func (m FreeModule[E]) FromRow(r *matrix.Dense[E]) ([]E, error) {
	if err := matrix.ValidateNotNil(r); err != nil {
		return nil, moduleErrorf(opFromRow, err)
	}
	if r.Rows() != 1 || r.Cols() != m.rank {
		return nil, moduleErrorf(opFromRow, fmt.Errorf("shape %dx%d, want 1x%d: %w",
			r.Rows(), r.Cols(), m.rank, matrix.ErrDimensionMismatch))
	}
	v, _ := r.Row(0) // shape checked
	if err := m.IsElement(v); err != nil {
		return nil, moduleErrorf(opFromRow, err)
	}

	return v, nil
}

// check2 validates both operands of a binary operation.
func (m FreeModule[E]) check2(v, w []E) error {
	if err := m.IsElement(v); err != nil {
		return fmt.Errorf("lhs: %w", err)
	}
	if err := m.IsElement(w); err != nil {
		return fmt.Errorf("rhs: %w", err)
	}

	return nil
}

// euclidean returns the canonical-reduction capability of the ring.
func (m FreeModule[E]) euclidean() (ring.EuclideanDomain[E], error) {
	ed, ok := m.ring.(ring.EuclideanDomain[E])
	if !ok {
		return nil, fmt.Errorf("%v: %w", m.ring, ErrNoCanonicalReduction)
	}

	return ed, nil
}
