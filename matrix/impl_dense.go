// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - At/Set: O(1); Row: O(c); Col: O(r); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
	ctxCol = "Col" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[E]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[E]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[E]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a plain sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense[E]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *Dense[E]) at(i, j int) E { return m.data[i*m.c+j] }

// set is the unchecked writer used by kernels after shape validation.
func (m *Dense[E]) set(i, j int, v E) { m.data[i*m.c+j] = v }

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[E]) At(row, col int) (E, error) {
	var zero E
	idx, err := m.indexOf(row, col)
	if err != nil {
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col) or returns ErrOutOfRange.
// Set does not check ring membership; Dense has no ring.
// Complexity: O(1).
func (m *Dense[E]) Set(row, col int, v E) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense[E]) Row(i int) ([]E, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]E, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Errors: ErrOutOfRange.
// Complexity: O(r).
func (m *Dense[E]) Col(j int) ([]E, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.at(i, j)
	}

	return out, nil
}

// RowSlices returns copies of all rows, top to bottom.
// Complexity: O(r*c).
func (m *Dense[E]) RowSlices() [][]E {
	out := make([][]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]E, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns an independent copy of the matrix.
// Entries are shared values; kernels never mutate entries in place.
// Complexity: O(r*c).
func (m *Dense[E]) Clone() *Dense[E] {
	data := make([]E, len(m.data))
	copy(data, m.data)

	return &Dense[E]{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line using fmt's %v for entries.
// Complexity: O(r*c).
func (m *Dense[E]) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.at(i, j))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// swapRows exchanges rows i and k in place (kernel helper on owned clones).
func (m *Dense[E]) swapRows(i, k int) {
	if i == k {
		return
	}
	var j int
	for j = 0; j < m.c; j++ {
		m.data[i*m.c+j], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[i*m.c+j]
	}
}
