// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/ring"
)

// Determinant computes det(m) over an integral domain with the fraction-free
// Bareiss elimination.
// MAIN DESCRIPTION:
//   - Exact: every intermediate value is itself a minor of m, so each division
//     by the previous pivot is exact in any integral domain.
//
// Implementation:
//   - Stage 1: ValidateSquare; 0×0 has determinant one.
//   - Stage 2: for k = 0..n-2: if a[k,k] == 0 swap in a lower row with a
//     non-zero entry in column k (flip sign) or return zero; then
//     a[i,j] = (a[i,j]·a[k,k] − a[i,k]·a[k,j]) / prev for i,j > k; prev = a[k,k].
//   - Stage 3: det = ±a[n-1,n-1].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrInexactDivision if the ring's Div refuses a division (not an integral domain).
//
// Complexity:
//   - Time O(n^3) ring operations, Space O(n^2).
func Determinant[E any](d ring.IntegralDomain[E], m *Dense[E]) (E, error) {
	var zero E
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDeterminant, err)
	}
	n := m.r
	if n == 0 {
		return d.One(), nil
	}
	a := m.Clone()
	negate := false
	prev := d.One()

	var i, j, k int // loop iterators
	for k = 0; k < n-1; k++ {
		if ring.IsZero[E](d, a.at(k, k)) {
			swap := -1
			for i = k + 1; i < n; i++ {
				if !ring.IsZero[E](d, a.at(i, k)) {
					swap = i
					break
				}
			}
			if swap < 0 {
				return d.Zero(), nil
			}
			a.swapRows(k, swap)
			negate = !negate
		}
		akk := a.at(k, k)
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				num := ring.Sub[E](d, d.Mul(a.at(i, j), akk), d.Mul(a.at(i, k), a.at(k, j)))
				q, ok := d.Div(num, prev)
				if !ok {
					return zero, matrixErrorf(opDeterminant, ErrInexactDivision)
				}
				a.set(i, j, q)
			}
		}
		prev = akk
	}

	det := a.at(n-1, n-1)
	if negate {
		det = d.Neg(det)
	}

	return det, nil
}
