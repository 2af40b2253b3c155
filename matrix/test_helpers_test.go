// Package matrix_test contains helpers shared by the matrix test files.
package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/ring"
)

// MustInts builds an integer Dense from a table of int64 rows.
// cols is explicit so that empty tables keep their width.
func MustInts(t *testing.T, cols int, rows [][]int64) *matrix.Dense[*big.Int] {
	t.Helper()
	lifted := make([][]*big.Int, len(rows))
	for i, row := range rows {
		lifted[i] = ring.FromInts[*big.Int](ring.Z, row...)
	}
	m, err := matrix.FromRows(cols, lifted)
	require.NoError(t, err)

	return m
}

// MustRats builds a rational Dense from a table of "a/b" strings.
func MustRats(t *testing.T, cols int, rows [][]string) *matrix.Dense[*big.Rat] {
	t.Helper()
	lifted := make([][]*big.Rat, len(rows))
	for i, row := range rows {
		lifted[i] = make([]*big.Rat, len(row))
		for j, s := range row {
			x, ok := new(big.Rat).SetString(s)
			require.True(t, ok, "bad rational literal %q", s)
			lifted[i][j] = x
		}
	}
	m, err := matrix.FromRows(cols, lifted)
	require.NoError(t, err)

	return m
}

// Int64s flattens an integer Dense into int64 rows for readable assertions.
func Int64s(m *matrix.Dense[*big.Int]) [][]int64 {
	out := make([][]int64, m.Rows())
	for i, row := range m.RowSlices() {
		out[i] = VecInt64s(row)
	}

	return out
}

// VecInt64s converts a *big.Int vector into int64s.
func VecInt64s(v []*big.Int) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[i] = x.Int64()
	}

	return out
}

// RatStrings renders a rational Dense as "a/b" strings.
func RatStrings(m *matrix.Dense[*big.Rat]) [][]string {
	out := make([][]string, m.Rows())
	for i, row := range m.RowSlices() {
		out[i] = make([]string, len(row))
		for j, x := range row {
			out[i][j] = x.RatString()
		}
	}

	return out
}
