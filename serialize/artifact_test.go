package serialize

import (
	"math/big"
	"testing"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/interval"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip checks that serializing a fit and deserializing it at the
// same precision yields bit-exact decimal equivalence.
func TestRoundTrip(t *testing.T) {
	prec := uint(256)

	fits := []interval.Fit{
		{
			Start: *bignum.NewFloat(0, prec),
			End:   *bignum.NewFloat(0.5, prec),
			Fn: bignum.Rational{
				Ps: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(0.25, prec)},
				Qs: []big.Float{*bignum.NewFloat(1, prec), *bignum.NewFloat(-0.1, prec)},
			},
			Err: *bignum.NewFloat(1e-9, prec),
		},
	}

	data, err := Encode(fits)
	require.NoError(t, err)

	back, err := Decode(data, prec)
	require.NoError(t, err)
	require.Len(t, back, 1)

	diff := cmp.Diff(fits[0].Start.Text('g', -1), back[0].Start.Text('g', -1))
	require.Empty(t, diff)

	for i := range fits[0].Fn.Ps {
		require.Equal(t, fits[0].Fn.Ps[i].Text('g', -1), back[0].Fn.Ps[i].Text('g', -1))
	}
	for i := range fits[0].Fn.Qs {
		require.Equal(t, fits[0].Fn.Qs[i].Text('g', -1), back[0].Fn.Qs[i].Text('g', -1))
	}
	require.Equal(t, fits[0].Err.Text('g', -1), back[0].Err.Text('g', -1))
}

func TestEncodeFieldNames(t *testing.T) {
	prec := uint(128)
	fits := []interval.Fit{
		{
			Start: *bignum.NewFloat(0, prec),
			End:   *bignum.NewFloat(1, prec),
			Fn: bignum.Rational{
				Ps: []big.Float{*bignum.NewFloat(1, prec)},
				Qs: []big.Float{*bignum.NewFloat(1, prec)},
			},
			Err: *bignum.NewFloat(0, prec),
		},
	}

	data, err := Encode(fits)
	require.NoError(t, err)

	s := string(data)
	for _, want := range []string{`"start"`, `"end"`, `"fn"`, `"ps"`, `"qs"`, `"err"`} {
		require.Contains(t, s, want)
	}
}
