// Command buildtree runs the Interval Builder over the production
// defaults (N=M=4, START=0, END=erfinv(1-1e-18), TOLERANCE=1e-30,
// TARGET_ERROR=1e-8, DEFAULT_ROUNDS=20, target function
// x -> 1 - erf(x/sqrt2), i.e. erfc(x/sqrt2)) and writes the resulting interval tree as
// the JSON artifact.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/interval"
	"github.com/gud-cdf/remez/serialize"
)

var (
	flagN           = flag.Int("n", 4, "numerator degree")
	flagM           = flag.Int("m", 4, "denominator degree")
	flagDigits      = flag.Int("digits", 60, "decimal precision")
	flagTargetError = flag.Float64("target-error", 1e-8, "peak relative error threshold")
	flagTolerance   = flag.Float64("tolerance", 1e-30, "extremum bisection tolerance")
	flagRounds      = flag.Int("rounds", 20, "Remez rounds per interval")
	flagParallel    = flag.Bool("parallel", false, "bisect failed fits concurrently")
	flagVerbose     = flag.Bool("v", false, "print progress to stderr")
)

func main() {
	flag.Parse()

	path := "result.json"
	if flag.NArg() >= 1 {
		path = flag.Arg(0)
	}

	prec := bignum.DecimalPrec(*flagDigits)

	start := bignum.NewFloat(0, prec)
	one := bignum.NewFloat(1, prec)
	nearOne := one.Sub(one, bignum.NewFloat(1e-18, prec))
	end, err := bignum.Erfinv(nearOne)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sqrt2 := bignum.Sqrt2(prec)
	erfc := func(x *big.Float) *big.Float {
		one := bignum.NewFloat(1, prec)
		z := new(big.Float).SetPrec(prec).Quo(x, sqrt2)
		return one.Sub(one, bignum.Erf(z))
	}

	fits, err := interval.Build(interval.BuildParameters{
		N: *flagN, M: *flagM,
		Start:       start,
		End:         end,
		Function:    erfc,
		TargetError: bignum.NewFloat(*flagTargetError, prec),
		Tolerance:   bignum.NewFloat(*flagTolerance, prec),
		Rounds:      *flagRounds,
		Parallel:    *flagParallel,
		Verbose:     *flagVerbose,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "len(fits): %d\n", len(fits))

	data, err := serialize.Encode(fits)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "saved to %s\n", path)
}
