package codegen

import (
	"math/big"
	"strings"
	"testing"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/interval"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestToWADKnownValue checks that 1.0 converts to 1 WAD (10^18) and that
// it encodes as 0x...0de0b6b3a7640000.
func TestToWADKnownValue(t *testing.T) {
	prec := uint(256)

	n, err := ToWAD(bignum.NewFloat(1, prec))
	require.NoError(t, err)
	require.Equal(t, "0x"+n.Text(16), "0xde0b6b3a7640000")
	require.Equal(t, "0x0000000000000000000000000000000000000000000000000de0b6b3a7640000", Hex256(n))
}

func TestToFixedNegative(t *testing.T) {
	prec := uint(256)

	n, err := ToWAD(bignum.NewFloat(-1, prec))
	require.NoError(t, err)

	want := new(big.Int).Sub(twoPow256, big.NewInt(1_000_000_000_000_000_000))
	require.Equal(t, 0, n.Cmp(want))
}

func TestToFixedOverflow(t *testing.T) {
	prec := uint(256)
	huge := bignum.NewFloat(1, prec)
	huge.SetMantExp(huge, 300)

	_, err := ToX128(huge)
	require.ErrorIs(t, err, ErrOverflow)
}

// TestCodifyLinearChain exercises the <=3-leaf linear if-chain branch on a
// small two-leaf tree.
func TestCodifyLinearChain(t *testing.T) {
	prec := uint(256)

	fits := []interval.Fit{
		{
			Start: *bignum.NewFloat(0, prec),
			End:   *bignum.NewFloat(0.5, prec),
			Fn: bignum.Rational{
				Ps: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(0.3, prec)},
				Qs: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(-0.1, prec)},
			},
			Err: *bignum.NewFloat(1e-9, prec),
		},
		{
			Start: *bignum.NewFloat(0.5, prec),
			End:   *bignum.NewFloat(1, prec),
			Fn: bignum.Rational{
				Ps: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(0.2, prec)},
				Qs: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(-0.05, prec)},
			},
			Err: *bignum.NewFloat(1e-9, prec),
		},
	}

	code, err := Codify(fits)
	require.NoError(t, err)
	require.Contains(t, code, "if lt(z,")
	require.Contains(t, code, "sdiv(mul(")
	require.Contains(t, code, "y := 0")
	require.Contains(t, code, "break")
}

// TestMakePolyRejectsNonUnity checks the §7 sanity assert: a leading
// coefficient that normalizes to anything other than fixed-point 1 is
// rejected rather than silently miscompiled.
func TestMakePolyRejectsNonUnity(t *testing.T) {
	_, err := makePoly([]big.Int{*big.NewInt(1)}, "z", "num")
	require.ErrorIs(t, err, ErrNotUnity)
}

// TestHex256Shape is a property test over random WAD-scaled magnitudes:
// every encoding is a 64 hex digit string, and the two's-complement
// encoding of -x and the plain encoding of x sum to 1<<256.
func TestHex256Shape(t *testing.T) {
	prec := uint(256)

	rapid.Check(t, func(rt *rapid.T) {
		mag := rapid.Float64Range(0, 1e12).Draw(rt, "mag")

		pos, err := ToWAD(bignum.NewFloat(mag, prec))
		require.NoError(t, err)
		neg, err := ToWAD(bignum.NewFloat(-mag, prec))
		require.NoError(t, err)

		for _, n := range []*big.Int{pos, neg} {
			h := Hex256(n)
			require.True(t, strings.HasPrefix(h, "0x"))
			require.Len(t, h, 66)
		}

		if pos.Sign() != 0 {
			sum := new(big.Int).Add(pos, neg)
			require.Equal(t, 0, sum.Cmp(twoPow256))
		}
	})
}
