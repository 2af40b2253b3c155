// Package module implements free modules R^n of finite rank over a ring R,
// together with their submodules, cosets, affine subsets and linear maps.
//
// Vectors are plain []E slices of length n; the FreeModule value carries the
// ring and the rank. Arithmetic validates membership first and reports bad
// input as errors matching ErrNotInRing or ErrLengthMismatch.
//
// Canonical forms:
//
//	Submodule   rows of the row Hermite form of any generating set
//	Coset       representative reduced against the submodule basis
//	AffineSubset  empty, or a single Coset
//
// Equal submodules built from different generators have identical bases, so
// equality is a matrix comparison. Everything canonical needs a
// ring.EuclideanDomain; over weaker rings those constructors return
// ErrNoCanonicalReduction.
//
// Linear maps are stored as matrices whose columns are images of the domain
// basis. NewInjective, NewSurjective and NewBijective verify their claim once
// and panic with ErrContractViolation when it is false.
package module
