package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolveLinear(t *testing.T) {
	prec := uint(256)

	t.Run("2x2", func(t *testing.T) {
		// 2x + y = 5
		// x + 3y = 10  => x=1, y=3
		a := [][]big.Float{
			{*NewFloat(2, prec), *NewFloat(1, prec)},
			{*NewFloat(1, prec), *NewFloat(3, prec)},
		}
		b := []big.Float{*NewFloat(5, prec), *NewFloat(10, prec)}

		x, err := SolveLinear(a, b)
		require.NoError(t, err)

		x0, _ := x[0].Float64()
		x1, _ := x[1].Float64()
		require.InDelta(t, 1.0, x0, 1e-20)
		require.InDelta(t, 3.0, x1, 1e-20)
	})

	t.Run("Singular", func(t *testing.T) {
		a := [][]big.Float{
			{*NewFloat(1, prec), *NewFloat(2, prec)},
			{*NewFloat(2, prec), *NewFloat(4, prec)},
		}
		b := []big.Float{*NewFloat(1, prec), *NewFloat(2, prec)}

		_, err := SolveLinear(a, b)
		require.ErrorIs(t, err, ErrSingularMatrix)
	})
}
