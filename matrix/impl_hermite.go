// SPDX-License-Identifier: MIT

// Package matrix - canonical row reduction (row Hermite form) over a
// Euclidean domain, and the kernels derived from it: Rank and ColSolve.
//
// Purpose:
//   - Turn any generator matrix into the ring-canonical reduced basis of its
//     row span. Over Z this is the Hermite normal form; over a field it is the
//     reduced row echelon form. Equal row spans ⇒ identical reduced matrices.
//   - Expose the unimodular transform U with U·A = H for exact solving.
//
// Canonicality contract (provided by ring.EuclideanDomain):
//   - QuoRem returns a canonical remainder for each residue class modulo b.
//   - CanonicalAssociate picks one representative per class of associates.
//
// Determinism:
//   - Column-major sweep c = 0..cols-1, rows below the pivot in increasing order.
//   - Only unimodular row operations: swaps, adding multiples, scaling by units.

package matrix

import (
	"github.com/katalvlaran/lvlalg/ring"
)

// addRowMultiple replaces row dst by row dst + factor·row src.
func addRowMultiple[E any](r ring.Ring[E], m *Dense[E], dst, src int, factor E) {
	for j := 0; j < m.c; j++ {
		m.set(dst, j, r.Add(m.at(dst, j), r.Mul(factor, m.at(src, j))))
	}
}

// scaleRow replaces row i by u·row i.
func scaleRow[E any](r ring.Ring[E], m *Dense[E], i int, u E) {
	for j := 0; j < m.c; j++ {
		m.set(i, j, r.Mul(u, m.at(i, j)))
	}
}

// hermite is the shared reduction kernel.
// MAIN DESCRIPTION:
//   - Reduce a clone of m to row Hermite form H; when track is set, apply every
//     row operation to an identity matrix as well, yielding U with U·m = H.
//
// Implementation:
//   - Stage 1 (per column c, pivot row p): Euclid down the column. For every
//     row i > p, repeat { q = quo(H[p,c], H[i,c]); row_p -= q·row_i; swap(p, i) }
//     until H[i,c] == 0. Afterwards H[p,c] generates the column's ideal.
//   - Stage 2: skip the column if H[p,c] == 0 (no pivot here).
//   - Stage 3: multiply row p by the unit that makes H[p,c] canonical.
//   - Stage 4: reduce the entries above the pivot to canonical remainders.
//
// Returns:
//   - h: reduced matrix (zero rows at the bottom).
//   - u: transform (nil unless track).
//   - pivots: pivot column of each non-zero row, strictly increasing.
//
// Complexity:
//   - Time O(r^2·c·E) ring operations where E bounds the Euclid steps per pair.
//   - Space O(r*c + r^2).
func hermite[E any](ed ring.EuclideanDomain[E], m *Dense[E], track bool) (h, u *Dense[E], pivots []int) {
	h = m.Clone()
	if track {
		u, _ = Identity[E](ed, m.r) // m.r >= 0 by construction
	}
	rows, cols := h.r, h.c
	pivots = make([]int, 0, min(rows, cols))

	var (
		p, c, i, k int // pivot row, column and loop iterators
		q          E
	)
	for c = 0; c < cols && p < rows; c++ {
		// Stage 1: gcd accumulation into row p.
		for i = p + 1; i < rows; i++ {
			for !ring.IsZero[E](ed, h.at(i, c)) {
				q, _ = ed.QuoRem(h.at(p, c), h.at(i, c))
				negQ := ed.Neg(q)
				addRowMultiple[E](ed, h, p, i, negQ)
				h.swapRows(p, i)
				if track {
					addRowMultiple[E](ed, u, p, i, negQ)
					u.swapRows(p, i)
				}
			}
		}
		// Stage 2: no pivot in this column.
		if ring.IsZero[E](ed, h.at(p, c)) {
			continue
		}
		// Stage 3: canonical pivot.
		_, unit := ed.CanonicalAssociate(h.at(p, c))
		scaleRow[E](ed, h, p, unit)
		if track {
			scaleRow[E](ed, u, p, unit)
		}
		// Stage 4: canonical entries above the pivot.
		for k = 0; k < p; k++ {
			q, _ = ed.QuoRem(h.at(k, c), h.at(p, c))
			if ring.IsZero[E](ed, q) {
				continue
			}
			negQ := ed.Neg(q)
			addRowMultiple[E](ed, h, k, p, negQ)
			if track {
				addRowMultiple[E](ed, u, k, p, negQ)
			}
		}
		pivots = append(pivots, c)
		p++
	}

	return h, u, pivots
}

// Hermite returns the canonical row reduction of m and its pivot columns.
// MAIN DESCRIPTION:
//   - The first len(pivots) rows of h are the canonical basis of the row span
//     of m; the remaining rows are zero.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - See hermite.
//
// AI-Hints:
//   - Compare two row spans by comparing their Hermite forms with Equal.
func Hermite[E any](ed ring.EuclideanDomain[E], m *Dense[E]) (h *Dense[E], pivots []int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opHermite, err)
	}
	h, _, pivots = hermite(ed, m, false)

	return h, pivots, nil
}

// HermiteTransform returns (h, u, pivots) with u unimodular and u·m = h.
// Errors: ErrNilMatrix.
// Complexity: see hermite; the transform costs an extra O(r^2) per row operation.
func HermiteTransform[E any](ed ring.EuclideanDomain[E], m *Dense[E]) (h, u *Dense[E], pivots []int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opHermite, err)
	}
	h, u, pivots = hermite(ed, m, true)

	return h, u, pivots, nil
}

// Rank returns the number of pivots of the Hermite form of m.
// Errors: ErrNilMatrix.
func Rank[E any](ed ring.EuclideanDomain[E], m *Dense[E]) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opHermite, err)
	}
	_, _, pivots := hermite(ed, m, false)

	return len(pivots), nil
}

// ColSolve finds x with m·x = y exactly over the ring.
// MAIN DESCRIPTION:
//   - Returns (x, true, nil) when an exact solution exists, (nil, false, nil)
//     when none exists (e.g. y is not an integer combination of the columns).
//
// Implementation:
//   - Stage 1: A = mᵀ; reduce with transform: U·A = H.
//   - Stage 2: solve zᵀ·H = yᵀ by forward substitution on pivot columns,
//     z_k = (y[piv_k] − Σ_{j<k} z_j·H[j,piv_k]) / H[k,piv_k] (exact Div).
//   - Stage 3: verify zᵀ·H == yᵀ on every column (non-pivot columns too).
//   - Stage 4: x = Uᵀ·z, since xᵀ·A = zᵀ·U·A = zᵀ·H = yᵀ.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when len(y) != m.Rows().
//
// Complexity:
//   - One Hermite reduction of mᵀ plus O(c·r) substitution work.
//
// Notes:
//   - When the columns are independent the solution is unique.
func ColSolve[E any](ed ring.EuclideanDomain[E], m *Dense[E], y []E) ([]E, bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, false, matrixErrorf(opColSolve, err)
	}
	if err := ValidateVecLen(y, m.r); err != nil {
		return nil, false, matrixErrorf(opColSolve, err)
	}
	a, err := Transpose(m)
	if err != nil {
		return nil, false, matrixErrorf(opColSolve, err)
	}
	h, u, pivots := hermite(ed, a, true)

	// Stage 2: forward substitution over the echelon rows.
	z := make([]E, h.r)
	for j := range z {
		z[j] = ed.Zero()
	}
	var j, k int // loop iterators
	for k = 0; k < len(pivots); k++ {
		col := pivots[k]
		residual := y[col]
		for j = 0; j < k; j++ {
			residual = ring.Sub[E](ed, residual, ed.Mul(z[j], h.at(j, col)))
		}
		zk, ok := ed.Div(residual, h.at(k, col))
		if !ok {
			return nil, false, nil
		}
		z[k] = zk
	}

	// Stage 3: the pivot equations hold by construction; check all columns.
	for col := 0; col < h.c; col++ {
		acc := ed.Zero()
		for j = 0; j < len(pivots); j++ {
			acc = ed.Add(acc, ed.Mul(z[j], h.at(j, col)))
		}
		if !ed.Equal(acc, y[col]) {
			return nil, false, nil
		}
	}

	// Stage 4: x = Uᵀ·z.
	x := make([]E, u.c)
	for i := 0; i < u.c; i++ {
		acc := ed.Zero()
		for j = 0; j < u.r; j++ {
			acc = ed.Add(acc, ed.Mul(z[j], u.at(j, i)))
		}
		x[i] = acc
	}

	return x, true, nil
}
