// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/membership checks here.
//  - Return errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - Shape checks are O(1) and allocate nothing.
//  - ValidateEntries runs O(r*c) membership tests in fixed i→j order.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[E any](m *Dense[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[E any](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[E any](m *Dense[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows for the product a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[E any](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks len(x) == n (e.g. MatVec input or solve right-hand side).
// Errors: ErrDimensionMismatch.
// Complexity: O(1).
func ValidateVecLen[E any](x []E, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateEntries runs r.IsElement on every entry of m.
// Errors: ErrNilMatrix; ErrNotElement wrapped with the offending coordinates.
// Complexity: O(r*c).
func ValidateEntries[E any](r ring.Ring[E], m *Dense[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if err := r.IsElement(m.at(i, j)); err != nil {
				return validatorErrorf("ValidateEntries",
					fmt.Errorf("(%d,%d): %w: %w", i, j, ErrNotElement, err))
			}
		}
	}

	return nil
}
