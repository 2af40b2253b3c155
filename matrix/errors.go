// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with matrixErrorf("<Op>", err); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> algebraic failure.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal: free modules of rank 0 exist.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotElement indicates that an entry failed the ring membership test.
	ErrNotElement = errors.New("matrix: entry is not a ring element")

	// ErrInexactDivision signals that an exact division required by a
	// fraction-free kernel did not divide; the ring is not an integral domain.
	ErrInexactDivision = errors.New("matrix: inexact division in integral-domain kernel")

	// ErrNoMinimalPolynomial signals that no monic annihilating polynomial of
	// degree <= n was found over the ring (impossible over integrally closed domains).
	ErrNoMinimalPolynomial = errors.New("matrix: minimal polynomial not found")
)
