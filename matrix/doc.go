// Package matrix is the exact, ring-generic linear-algebra collaborator.
//
// The matrix package provides:
//
//   - Dense[E], a row-major container with safe accessors (At/Set/Row/Col),
//     constructors by entry (Construct), from rows/columns (FromRows/FromCols)
//     and Identity.
//   - Ring-generic kernels that receive the ring descriptor explicitly:
//     Add, Sub, Scale, Mul, Transpose, MatVec, Equal and Trace for any ring;
//     Determinant (fraction-free Bareiss) for integral domains;
//     Hermite, HermiteTransform, Rank, ColSolve and MinimalPolynomial for
//     Euclidean domains (the canonical-reduction capability).
//
// There is no floating point anywhere: every result is exact, and the
// canonical row reduction is unique, so two generator matrices with the same
// row span reduce to Equal matrices.
//
// All kernels validate shapes up front and return sentinel errors
// (errors.go) wrapped with an operation tag; inputs are never mutated.
//
// See the examples in this package for usage patterns.
package matrix
