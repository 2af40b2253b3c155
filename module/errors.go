// Package module: sentinel errors and the typed membership error.

package module

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates an element whose length differs from the module rank.
	ErrLengthMismatch = errors.New("module: element length does not match rank")

	// ErrNotInRing indicates an element component that fails the ring's membership test.
	ErrNotInRing = errors.New("module: component is not a ring element")

	// ErrOutOfRange indicates a basis index outside [0, rank).
	ErrOutOfRange = errors.New("module: basis index out of range")

	// ErrNoCanonicalReduction indicates a ring without a canonical row reduction
	// (it does not implement ring.EuclideanDomain).
	ErrNoCanonicalReduction = errors.New("module: ring has no canonical reduction")

	// ErrModuleMismatch indicates operands that live in different modules.
	ErrModuleMismatch = errors.New("module: operands belong to different modules")

	// ErrContractViolation is wrapped by the panic value of a linear-map
	// constructor whose capability claim contradicts the computed rank, or
	// whose domain and range do not share a ring. It is never returned.
	ErrContractViolation = errors.New("module: contract violation")
)

// MembershipError reports the first component of an element that is not a
// ring element. It matches ErrNotInRing and the ring's own cause via errors.Is.
type MembershipError struct {
	Index int   // position of the offending component
	Err   error // the ring's IsElement error
}

// Error implements error.
func (e *MembershipError) Error() string {
	return fmt.Sprintf("%v at index %d: %v", ErrNotInRing, e.Index, e.Err)
}

// Unwrap exposes both ErrNotInRing and the ring's cause.
func (e *MembershipError) Unwrap() []error { return []error{ErrNotInRing, e.Err} }

// moduleErrorf wraps err with an operation tag, preserving it for errors.Is.
func moduleErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
