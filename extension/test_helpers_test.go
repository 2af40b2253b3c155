// Package extension_test contains fixtures shared by the extension test files.
package extension_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/extension"
	"github.com/katalvlaran/lvlalg/internal/quadratic"
	"github.com/katalvlaran/lvlalg/morphism"
	"github.com/katalvlaran/lvlalg/ring"
)

type (
	gauss = quadratic.Elem[*big.Int]
	qrt2  = quadratic.Elem[*big.Rat]
)

var (
	zi = quadratic.New[*big.Int](ring.Z, -1, "Z[i]")
	k2 = quadratic.NewField[*big.Rat](ring.Q, 2, "Q(√2)")
)

func g(a, b int64) gauss { return zi.Of(big.NewInt(a), big.NewInt(b)) }

func q(a, b *big.Rat) qrt2 { return k2.Of(a, b) }

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

// gaussianIntegers is Z[i] over Z with basis {1, i}.
func gaussianIntegers(t *testing.T) *extension.Extension[*big.Int, gauss] {
	t.Helper()
	inc := morphism.NewCharZeroSubringInclusion[gauss](zi)
	ext, err := morphism.WithBasis[*big.Int, gauss](inc, []gauss{zi.One(), zi.Sqrt()},
		func(x gauss) []*big.Int { return []*big.Int{x.A, x.B} })
	require.NoError(t, err)

	return extension.Of[*big.Int, gauss](ext)
}

// rootTwoField is Q(√2) over Q with basis {1, √2}.
func rootTwoField(t *testing.T) *extension.Extension[*big.Rat, qrt2] {
	t.Helper()
	inc := morphism.NewPrincipalRationalSubfieldInclusion[qrt2](k2)
	ext, err := morphism.WithBasis[*big.Rat, qrt2](inc, []qrt2{k2.One(), k2.Sqrt()},
		func(x qrt2) []*big.Rat { return []*big.Rat{x.A, x.B} })
	require.NoError(t, err)

	return extension.Of[*big.Rat, qrt2](ext)
}

// plainRing hides every capability of the wrapped ring except ring.Ring.
type plainRing struct{ ring.Ring[*big.Int] }

// bareGaussianIntegers is Z[i] over a Z that exposes no integral-domain capability.
func bareGaussianIntegers(t *testing.T) *extension.Extension[*big.Int, gauss] {
	t.Helper()
	inc := morphism.NewInjective[*big.Int, gauss](plainRing{ring.Z}, zi, zi.FromInt, zi.TryToInt)
	ext, err := morphism.WithBasis[*big.Int, gauss](inc, []gauss{zi.One(), zi.Sqrt()},
		func(x gauss) []*big.Int { return []*big.Int{x.A, x.B} })
	require.NoError(t, err)

	return extension.Of[*big.Int, gauss](ext)
}

func ints(v []*big.Int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = x.Int64()
	}

	return out
}
