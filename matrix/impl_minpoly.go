// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvlalg/poly"
	"github.com/katalvlaran/lvlalg/ring"
)

// MinimalPolynomial returns the monic minimal polynomial of the square matrix m.
// MAIN DESCRIPTION:
//   - Finds the least k such that m^k is a ring combination of I, m, ..., m^(k-1)
//     and returns x^k − Σ c_i·x^i.
//
// Implementation:
//   - Stage 1: ValidateSquare; the 0×0 matrix has minimal polynomial 1.
//   - Stage 2: for k = 1..n: P_k = P_(k-1)·m; stack vec(P_0..P_(k-1)) as columns
//     of an n²×k matrix K and ColSolve K·c = vec(P_k).
//   - Stage 3: the first solvable k gives the coefficients.
//
// Behavior highlights:
//   - Powers before k are linearly independent (else an earlier k would have
//     solved), so c is unique.
//   - Over a field this is the classical Krylov construction; over an
//     integrally closed domain (Z, F[x]) the minimal polynomial over the
//     fraction field already has coefficients in the ring, so the exact
//     solve succeeds at the same k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrNoMinimalPolynomial if no k <= n solves (ring not integrally closed).
//
// Complexity:
//   - Time O(n) solves of size n²×k each; fine for the small degrees of ring extensions.
func MinimalPolynomial[E any](ed ring.EuclideanDomain[E], m *Dense[E]) (poly.Polynomial[E], error) {
	if err := ValidateSquare(m); err != nil {
		return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, err)
	}
	n := m.r
	if n == 0 {
		return poly.New[E](ed, []E{ed.One()}), nil
	}

	power, err := Identity[E](ed, n)
	if err != nil {
		return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, err)
	}
	krylov := [][]E{power.data} // vec(P_0)

	for k := 1; k <= n; k++ {
		if power, err = Mul[E](ed, power, m); err != nil {
			return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, err)
		}
		basis, err := FromCols(n*n, krylov)
		if err != nil {
			return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, err)
		}
		c, ok, err := ColSolve(ed, basis, power.data)
		if err != nil {
			return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, err)
		}
		if ok {
			coeffs := make([]E, k+1)
			for i := 0; i < k; i++ {
				coeffs[i] = ed.Neg(c[i])
			}
			coeffs[k] = ed.One()

			return poly.New[E](ed, coeffs), nil
		}
		krylov = append(krylov, power.data)
	}

	return poly.Polynomial[E]{}, matrixErrorf(opMinPoly, ErrNoMinimalPolynomial)
}
