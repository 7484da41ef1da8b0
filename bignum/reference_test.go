package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSelectReference(t *testing.T) {
	prec := uint(128)

	t.Run("AlreadyAlternating", func(t *testing.T) {
		xs := floats(prec, 0, 1, 2, 3)
		errs := floats(prec, 1, -1, 1, -1)

		out, err := SelectReference(xs, errs, 4)
		require.NoError(t, err)
		require.Len(t, out, 4)
	})

	t.Run("PicksLocalMaxWithinRun", func(t *testing.T) {
		// Two same-signed errors in a row: the larger magnitude wins.
		xs := floats(prec, 0, 1, 2, 3, 4)
		errs := floats(prec, 1, 2, -1, -2, 1)

		out, err := SelectReference(xs, errs, 4)
		require.NoError(t, err)
		require.Len(t, out, 4)

		// The reduced run should have kept x=1 (err=2) over x=0 (err=1),
		// and x=3 (err=-2) over x=2 (err=-1).
		got := make([]float64, len(out))
		for i := range out {
			got[i], _ = out[i].Float64()
		}
		require.Equal(t, []float64{1, 2, 3, 4}, got)
	})

	t.Run("InsufficientExtrema", func(t *testing.T) {
		xs := floats(prec, 0, 1)
		errs := floats(prec, 1, 2)

		_, err := SelectReference(xs, errs, 4)
		require.ErrorIs(t, err, ErrInsufficientExtrema)
	})
}

// TestSelectReferenceAlternates checks that for a random candidate stream
// (sign runs of random length), SelectReference either reports
// ErrInsufficientExtrema or returns exactly w points strictly increasing
// in x.
func TestSelectReferenceAlternates(t *testing.T) {
	prec := uint(128)

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(4, 12).Draw(t, "n")
		xs := make([]big.Float, n)
		errs := make([]big.Float, n)

		sign := 1.0
		for i := 0; i < n; i++ {
			xs[i] = *NewFloat(float64(i), prec)
			mag := rapid.Float64Range(0.1, 10).Draw(t, "mag")
			errs[i] = *NewFloat(sign*mag, prec)
			if rapid.Float64Range(0, 1).Draw(t, "flip") > 0.7 {
				sign = -sign
			}
		}

		w := rapid.IntRange(2, n).Draw(t, "w")

		out, err := SelectReference(xs, errs, w)
		if err != nil {
			require.ErrorIs(t, err, ErrInsufficientExtrema)
			return
		}

		require.Len(t, out, w)
		for i := 1; i < len(out); i++ {
			require.Equal(t, 1, out[i].Cmp(&out[i-1]))
		}
	})
}

func floats(prec uint, vs ...float64) []big.Float {
	out := make([]big.Float, len(vs))
	for i, v := range vs {
		out[i] = *NewFloat(v, prec)
	}
	return out
}
