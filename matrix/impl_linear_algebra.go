// SPDX-License-Identifier: MIT
// Package matrix provides exact ring-generic operations on Dense matrices:
// element-wise addition and subtraction, scaling, matrix multiplication,
// transpose, matrix-vector product, equality and trace. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical linear-algebra kernels used by modules and extensions.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Every kernel receives the ring descriptor explicitly; Dense carries none.
//   - Inputs are never mutated; every result is a freshly allocated Dense.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opConstruct   = "Construct"
	opFromRows    = "FromRows"
	opFromCols    = "FromCols"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opMatVec      = "MatVec"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opHermite     = "Hermite"
	opColSolve    = "ColSolve"
	opMinPoly     = "MinimalPolynomial"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes element-wise out = a + b or a - b.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b).
//   - Stage 2: single flat loop over the row-major buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub[E any](r ring.Ring[E], a, b *Dense[E], subtract bool, opTag string) (*Dense[E], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	out := &Dense[E]{r: a.r, c: a.c, data: make([]E, len(a.data))}
	for k := range a.data {
		if subtract {
			out.data[k] = ring.Sub(r, a.data[k], b.data[k])
		} else {
			out.data[k] = r.Add(a.data[k], b.data[k])
		}
	}

	return out, nil
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[E any](r ring.Ring[E], a, b *Dense[E]) (*Dense[E], error) {
	return addSub(r, a, b, false, opAdd)
}

// Sub returns a − b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[E any](r ring.Ring[E], a, b *Dense[E]) (*Dense[E], error) {
	return addSub(r, a, b, true, opSub)
}

// Scale returns alpha·m (left scalar multiplication).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[E any](r ring.Ring[E], m *Dense[E], alpha E) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := &Dense[E]{r: m.r, c: m.c, data: make([]E, len(m.data))}
	for k := range m.data {
		out.data[k] = r.Mul(alpha, m.data[k])
	}

	return out, nil
}

// Mul returns the matrix product a × b.
// MAIN DESCRIPTION:
//   - Classic triple loop in i→k→j order over flat buffers.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: accumulate out[i,j] = Σ_k a[i,k]·b[k,j] starting from r.Zero().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Fixed summation order k = 0..n-1, which matters for non-commutative
//     element representations only through the ring's own Add.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero inner dimension is legal and yields the zero matrix.
func Mul[E any](r ring.Ring[E], a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.r, a.c, b.c
	out, err := New(r, rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int // loop iterators
	var aik E
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aik = a.at(i, k)
			for j = 0; j < cols; j++ {
				out.set(i, j, r.Add(out.at(i, j), r.Mul(aik, b.at(k, j))))
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose[E any](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return Construct(m.c, m.r, func(i, j int) E { return m.at(j, i) })
}

// MatVec returns y = m·x for a column vector x of length m.Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MatVec[E any](r ring.Ring[E], m *Dense[E], x []E) ([]E, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]E, m.r)
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ {
		acc := r.Zero()
		for j = 0; j < m.c; j++ {
			acc = r.Add(acc, r.Mul(m.at(i, j), x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Equal reports whether a and b have the same shape and ring-equal entries.
// A nil matrix equals only another nil matrix.
// Complexity: O(r*c).
func Equal[E any](r ring.Ring[E], a, b *Dense[E]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !r.Equal(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// Trace returns Σ m[i,i] for a square matrix (zero for 0×0).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace[E any](r ring.Ring[E], m *Dense[E]) (E, error) {
	var zero E
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}
	acc := r.Zero()
	for i := 0; i < m.r; i++ {
		acc = r.Add(acc, m.at(i, i))
	}

	return acc, nil
}
