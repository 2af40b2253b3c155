// Package module - canonical submodules of a free module.
//
// A Submodule stores the canonical row reduction of its generators: the
// non-zero rows of the Hermite form (HNF over Z, RREF over a field) and their
// pivot columns. The reduction is unique, so Equal is a plain comparison of
// the stored bases.

package module

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

const (
	opRowSpan     = "MatrixRowSpan"
	opGenerated   = "GeneratedSubmodule"
	opReduce      = "Reduce"
	opCoordinates = "Coordinates"
	opSum         = "Sum"
	opCoset       = "Coset"
)

// Submodule is a finitely generated submodule of a FreeModule in canonical form.
// Immutable; safe for concurrent readers.
type Submodule[E any] struct {
	ambient FreeModule[E]
	ed      ring.EuclideanDomain[E]
	basis   *matrix.Dense[E] // Rank()×ambient.rank, canonical rows
	pivots  []int            // pivot column of each basis row, increasing
}

// MatrixRowSpan returns the submodule generated by the rows of gen.
// MAIN DESCRIPTION:
//   - Canonical: two generator matrices with the same row span yield Equal submodules.
//
// Implementation:
//   - Stage 1: require ring.EuclideanDomain; gen.Cols() == Rank(); valid entries.
//   - Stage 2: matrix.Hermite; keep the non-zero rows.
//
// Errors:
//   - ErrNoCanonicalReduction, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
//     matrix.ErrNotElement.
func (m FreeModule[E]) MatrixRowSpan(gen *matrix.Dense[E]) (*Submodule[E], error) {
	ed, err := m.euclidean()
	if err != nil {
		return nil, moduleErrorf(opRowSpan, err)
	}
	if err = matrix.ValidateNotNil(gen); err != nil {
		return nil, moduleErrorf(opRowSpan, err)
	}
	if gen.Cols() != m.rank {
		return nil, moduleErrorf(opRowSpan, fmt.Errorf("generator width %d, module rank %d: %w",
			gen.Cols(), m.rank, matrix.ErrDimensionMismatch))
	}
	if err = matrix.ValidateEntries(m.ring, gen); err != nil {
		return nil, moduleErrorf(opRowSpan, err)
	}

	h, pivots, err := matrix.Hermite(ed, gen)
	if err != nil {
		return nil, moduleErrorf(opRowSpan, err)
	}
	basis, err := matrix.Construct(len(pivots), m.rank, func(i, j int) E {
		x, _ := h.At(i, j)
		return x
	})
	if err != nil {
		return nil, moduleErrorf(opRowSpan, err)
	}

	return &Submodule[E]{ambient: m, ed: ed, basis: basis, pivots: pivots}, nil
}

// GeneratedSubmodule returns the submodule generated by gens.
// No generators yields the zero submodule.
// Errors: those of IsElement for the first invalid generator, ErrNoCanonicalReduction.
func (m FreeModule[E]) GeneratedSubmodule(gens ...[]E) (*Submodule[E], error) {
	for i, g := range gens {
		if err := m.IsElement(g); err != nil {
			return nil, moduleErrorf(opGenerated, fmt.Errorf("generator %d: %w", i, err))
		}
	}
	gen, err := matrix.FromRows(m.rank, gens)
	if err != nil {
		return nil, moduleErrorf(opGenerated, err)
	}

	return m.MatrixRowSpan(gen)
}

// ImproperSubmodule returns the whole module, the row span of the identity.
func (m FreeModule[E]) ImproperSubmodule() (*Submodule[E], error) {
	id, err := matrix.Identity(m.ring, m.rank)
	if err != nil {
		return nil, err
	}

	return m.MatrixRowSpan(id)
}

// ZeroSubmodule returns {0}.
func (m FreeModule[E]) ZeroSubmodule() (*Submodule[E], error) {
	return m.GeneratedSubmodule()
}

// Module returns the ambient free module.
func (s *Submodule[E]) Module() FreeModule[E] { return s.ambient }

// Rank returns the number of canonical basis rows.
func (s *Submodule[E]) Rank() int { return len(s.pivots) }

// Basis returns copies of the canonical basis rows.
func (s *Submodule[E]) Basis() [][]E { return s.basis.RowSlices() }

// BasisMatrix returns a copy of the canonical basis as a Rank()×rank matrix.
func (s *Submodule[E]) BasisMatrix() *matrix.Dense[E] { return s.basis.Clone() }

// Pivots returns the pivot column of each basis row.
func (s *Submodule[E]) Pivots() []int { return append([]int(nil), s.pivots...) }

// Reduce returns the canonical representative of v modulo the submodule.
// MAIN DESCRIPTION:
//   - v and w reduce to Equal elements exactly when v − w lies in the submodule.
//
// Implementation:
//   - For each basis row k in order: q = quo(v[p_k], b_k[p_k]); v −= q·b_k.
//     Later rows vanish at earlier pivots, so each pivot entry ends as a
//     canonical remainder modulo its pivot.
//
// Errors: those of IsElement.
// Complexity: O(Rank()·rank).
func (s *Submodule[E]) Reduce(v []E) ([]E, error) {
	if err := s.ambient.IsElement(v); err != nil {
		return nil, moduleErrorf(opReduce, err)
	}

	return s.reduce(v), nil
}

func (s *Submodule[E]) reduce(v []E) []E {
	out := append([]E(nil), v...)
	for k, p := range s.pivots {
		row, _ := s.basis.Row(k) // k < Rank()
		q, _ := s.ed.QuoRem(out[p], row[p])
		if ring.IsZero[E](s.ed, q) {
			continue
		}
		for j := range out {
			out[j] = ring.Sub[E](s.ed, out[j], s.ed.Mul(q, row[j]))
		}
	}

	return out
}

// Contains reports whether v lies in the submodule.
func (s *Submodule[E]) Contains(v []E) (bool, error) {
	r, err := s.Reduce(v)
	if err != nil {
		return false, err
	}
	for _, x := range r {
		if !ring.IsZero[E](s.ed, x) {
			return false, nil
		}
	}

	return true, nil
}

// Coordinates returns c with Σ c_k·Basis()[k] == v, or (nil, false, nil) when v
// is not in the submodule. The coordinates are unique.
// Errors: those of IsElement.
func (s *Submodule[E]) Coordinates(v []E) ([]E, bool, error) {
	if err := s.ambient.IsElement(v); err != nil {
		return nil, false, moduleErrorf(opCoordinates, err)
	}
	cols, err := matrix.Transpose(s.basis)
	if err != nil {
		return nil, false, moduleErrorf(opCoordinates, err)
	}
	c, ok, err := matrix.ColSolve(s.ed, cols, v)
	if err != nil {
		return nil, false, moduleErrorf(opCoordinates, err)
	}

	return c, ok, nil
}

// Sum returns s + t, the submodule generated by both bases.
// Errors: ErrModuleMismatch.
func (s *Submodule[E]) Sum(t *Submodule[E]) (*Submodule[E], error) {
	if !s.ambient.SameAs(t.ambient) {
		return nil, moduleErrorf(opSum, ErrModuleMismatch)
	}
	rows := append(s.basis.RowSlices(), t.basis.RowSlices()...)
	gen, err := matrix.FromRows(s.ambient.rank, rows)
	if err != nil {
		return nil, moduleErrorf(opSum, err)
	}

	return s.ambient.MatrixRowSpan(gen)
}

// Includes reports whether t ⊆ s. Submodules of different modules never include each other.
func (s *Submodule[E]) Includes(t *Submodule[E]) bool {
	if !s.ambient.SameAs(t.ambient) {
		return false
	}
	for _, row := range t.basis.RowSlices() {
		for _, x := range s.reduce(row) {
			if !ring.IsZero[E](s.ed, x) {
				return false
			}
		}
	}

	return true
}

// Equal reports whether s and t are the same submodule of the same module.
func (s *Submodule[E]) Equal(t *Submodule[E]) bool {
	return s.ambient.SameAs(t.ambient) && matrix.Equal(s.ambient.ring, s.basis, t.basis)
}

// Coset returns rep + s with a canonical representative.
// Errors: those of IsElement.
func (s *Submodule[E]) Coset(rep []E) (*Coset[E], error) {
	r, err := s.Reduce(rep)
	if err != nil {
		return nil, moduleErrorf(opCoset, err)
	}

	return &Coset[E]{sub: s, rep: r}, nil
}

// String renders the canonical basis.
func (s *Submodule[E]) String() string {
	return fmt.Sprintf("Submodule of %v with basis\n%v", s.ambient, s.basis)
}
