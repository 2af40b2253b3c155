// SPDX-License-Identifier: MIT

// Package matrix: the generic dense container.
// This file intentionally contains ONLY the Dense type and its constructors.
// Errors live in errors.go, validators in validators.go, kernels in impl_*.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// Dense is a row-major rows×cols matrix with entries of element type E.
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Dense carries no ring: kernels receive the ring descriptor explicitly, so one
// container type serves every ring whose elements share a Go type.
// Entries are treated as immutable values; kernels never mutate an entry in
// place, only replace it.
type Dense[E any] struct {
	r, c int // row and column counts (>= 0)
	data []E // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// New creates an rows×cols matrix filled with r.Zero().
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate buffer and write a fresh zero into every cell.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - A fresh r.Zero() per cell keeps pointer-backed elements (e.g. *big.Int) unaliased.
func New[E any](r ring.Ring[E], rows, cols int) (*Dense[E], error) {
	return Construct(rows, cols, func(int, int) E { return r.Zero() })
}

// Construct builds a rows×cols matrix whose (i, j) entry is f(i, j).
// Determinism: f is called in fixed i→j order exactly once per cell.
// Complexity: O(r*c) calls of f.
func Construct[E any](rows, cols int, f func(i, j int) E) (*Dense[E], error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opConstruct, ErrInvalidDimensions)
	}
	data := make([]E, rows*cols)
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			data[i*cols+j] = f(i, j)
		}
	}

	return &Dense[E]{r: rows, c: cols, data: data}, nil
}

// FromRows stacks the given rows into a len(rows)×cols matrix.
// cols is explicit so that an empty row list still has a width.
// Errors: ErrInvalidDimensions for cols<0; ErrDimensionMismatch for ragged rows.
// Complexity: O(r*c).
func FromRows[E any](cols int, rows [][]E) (*Dense[E], error) {
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch))
		}
	}

	return Construct(len(rows), cols, func(i, j int) E { return rows[i][j] })
}

// FromCols places the given columns side by side into a rows×len(cols) matrix.
// rows is explicit so that an empty column list still has a height.
// Errors: ErrInvalidDimensions for rows<0; ErrDimensionMismatch for ragged columns.
// Complexity: O(r*c).
func FromCols[E any](rows int, cols [][]E) (*Dense[E], error) {
	for j := range cols {
		if len(cols[j]) != rows {
			return nil, matrixErrorf(opFromCols, fmt.Errorf("column %d has %d entries, want %d: %w",
				j, len(cols[j]), rows, ErrDimensionMismatch))
		}
	}

	return Construct(rows, len(cols), func(i, j int) E { return cols[j][i] })
}

// Identity returns I_n over r (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2).
func Identity[E any](r ring.Ring[E], n int) (*Dense[E], error) {
	return Construct(n, n, func(i, j int) E {
		if i == j {
			return r.One()
		}

		return r.Zero()
	})
}
