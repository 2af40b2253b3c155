// Package ring defines ring and field descriptors as runtime capability values.
//
// 🚀 What is a descriptor?
//
//	A descriptor is an ordinary Go value that knows how to combine elements of
//	one ring: Zero, One, Add, Neg, Mul, Equal and a membership test. Elements
//	are opaque to every algorithm built on top; only their descriptor combines
//	them. Descriptors are injected by reference into modules, matrices and
//	homomorphisms, so the same algorithm serves integers, rationals and any
//	extension ring a caller supplies.
//
// ✨ Capability ladder:
//
//	Ring              arithmetic + FromInt
//	CharZeroRing      + TryToInt
//	IntegralDomain    + exact Div
//	EuclideanDomain   + canonical QuoRem / CanonicalAssociate (canonical row reduction)
//	Field             + Inv
//	CharZeroField     + FromRat / TryToRat
//
// Algorithms ask for the weakest capability they need and discover stronger
// ones with a type assertion at the single place they are required.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlalg/ring"
//
//	v := ring.FromInts(ring.Z, 1, -2, 3) // []*big.Int{1, -2, 3}
//	q, r := ring.Z.QuoRem(v[1], v[2])    // -2 = -1·3 + 1
//
// Descriptor equality means "same underlying ring", see Same.
package ring
