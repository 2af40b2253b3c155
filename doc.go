// Package lvlalg is an exact generic-algebra kernel: rings with declared
// capabilities, free modules of finite rank, their submodules and cosets,
// linear maps between them, ring homomorphisms and the invariants of finite
// ring extensions.
//
// 🚀 What is lvlalg?
//
//	A small, dependency-light library that brings together:
//		• Rings: Z and Q on math/big, plus capability interfaces
//		  (IntegralDomain, EuclideanDomain, Field, CharZeroField)
//		• Matrices: dense generic matrices with exact Hermite form,
//		  fraction-free determinant and minimal polynomial
//		• Modules: R^n, submodules with canonical bases, cosets,
//		  affine subsets, linear maps tagged injective/surjective/bijective
//		• Morphisms: ring homomorphisms, composition, canonical inclusions
//		  Z → R and Q → K, range modules with a chosen basis
//		• Extensions: norm, trace, minimal polynomial, trace form and
//		  discriminant of a finite free extension
//
// ✨ Why choose lvlalg?
//
//   - Exact: no floating point anywhere; every answer is canonical
//   - Generic: one implementation serves Z, Q and any ring you plug in
//   - Explicit: errors for bad input, panics only for broken contracts
//
// Under the hood, everything is organized under these subpackages:
//
//	ring/       ring descriptors, capability interfaces, Z and Q
//	poly/       dense univariate polynomials over a ring
//	matrix/     generic dense matrices and exact reductions
//	module/     free modules, submodules, cosets, linear maps
//	morphism/   ring homomorphisms and range-module views
//	extension/  invariants of finite free ring extensions
//
// Quick example:
//
//	L = 2Z × 3Z inside Z²
//
//	    (5, 7) + L  ==  (1, 1) + L
//
// because (5, 7) − (1, 1) = (4, 6) lies in L. Submodule.Coset picks (1, 1)
// as the canonical representative of both.
//
// See examples/ for runnable programs.
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
