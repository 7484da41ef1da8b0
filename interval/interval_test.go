package interval

import (
	"math/big"
	"testing"

	"github.com/gud-cdf/remez/bignum"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestBuildErfc checks that building an interval tree over [0, erfinv(1-1e-18)]
// for x -> 1 - erf(x/sqrt2) with a target error of 1e-8 returns between 4 and
// 16 leaves, every one with Err <= 1e-8.
func TestBuildErfc(t *testing.T) {
	prec := uint(256)

	sqrt2 := bignum.Sqrt2(prec)
	one := bignum.NewFloat(1, prec)
	nearOne := one.Sub(one, bignum.NewFloat(1e-18, prec))
	target, err := bignum.Erfinv(nearOne)
	require.NoError(t, err)

	erfc := func(x *big.Float) *big.Float {
		z := new(big.Float).SetPrec(prec).Quo(x, sqrt2)
		one := bignum.NewFloat(1, prec)
		return one.Sub(one, bignum.Erf(z))
	}

	fits, err := Build(BuildParameters{
		N: 4, M: 4,
		Start:       bignum.NewFloat(0, prec),
		End:         target,
		Function:    erfc,
		TargetError: bignum.NewFloat(1e-8, prec),
		Tolerance:   bignum.NewFloat(1e-30, prec),
		Rounds:      20,
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(fits), 4)
	require.LessOrEqual(t, len(fits), 16)

	for i, f := range fits {
		errF, _ := f.Err.Float64()
		require.LessOrEqual(t, errF, 1e-8, "leaf %d", i)

		if i > 0 {
			require.Equal(t, 0, f.Start.Cmp(&fits[i-1].End), "leaf %d should start where leaf %d ends", i, i-1)
		}
	}

	require.Equal(t, 0, fits[0].Start.Cmp(bignum.NewFloat(0, prec)))
	require.Equal(t, 0, fits[len(fits)-1].End.Cmp(target))
}

// TestBuildParallelMatchesSequential checks that the Parallel code path
// produces the same leaf count as the default sequential walk.
func TestBuildParallelMatchesSequential(t *testing.T) {
	prec := uint(128)

	f := func(x *big.Float) *big.Float {
		return bignum.Erf(x)
	}

	base := BuildParameters{
		N: 2, M: 2,
		Start:       bignum.NewFloat(0, prec),
		End:         bignum.NewFloat(2, prec),
		Function:    f,
		TargetError: bignum.NewFloat(1e-6, prec),
		Tolerance:   bignum.NewFloat(1e-20, prec),
		Rounds:      20,
	}

	seq, err := Build(base)
	require.NoError(t, err)

	par := base
	par.Parallel = true
	parFits, err := Build(par)
	require.NoError(t, err)

	require.Equal(t, len(seq), len(parFits))
}

// TestCoverageInvariant is a property test checking that the fits tile
// the built range with no gaps between adjacent endpoints, and every
// randomly sampled x in range falls inside at least one fit's [Start, End].
// Built once (Remez is expensive) and checked against many sample points.
func TestCoverageInvariant(t *testing.T) {
	prec := uint(128)

	fits, err := Build(BuildParameters{
		N: 2, M: 2,
		Start:       bignum.NewFloat(0, prec),
		End:         bignum.NewFloat(1.5, prec),
		Function:    bignum.Erf,
		TargetError: bignum.NewFloat(1e-6, prec),
		Tolerance:   bignum.NewFloat(1e-20, prec),
		Rounds:      20,
	})
	require.NoError(t, err)
	require.NotEmpty(t, fits)

	for i := 1; i < len(fits); i++ {
		require.Equal(t, 0, fits[i-1].End.Cmp(&fits[i].Start))
	}

	rapid.Check(t, func(rt *rapid.T) {
		xf := rapid.Float64Range(0, 1.5).Draw(rt, "x")
		x := bignum.NewFloat(xf, prec)

		covered := 0
		for _, f := range fits {
			if x.Cmp(&f.Start) >= 0 && x.Cmp(&f.End) <= 0 {
				covered++
			}
		}
		if covered == 0 {
			rt.Fatalf("x=%v not covered by any fit", xf)
		}
	})
}
