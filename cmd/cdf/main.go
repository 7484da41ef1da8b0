// Command cdf prints the standard normal CDF Φ((x-u)/o) for three
// WAD-scaled decimal integer arguments x, u (mean), o (standard
// deviation), as a 0x-prefixed 64 hex digit 256-bit unsigned integer:
// cdf(x,u,o) = erfc(-(x-u)/(o*sqrt2)) / 2.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/cmd/internal/wadcli"
)

func main() {
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "usage: cdf <x_wad> <mu_wad> <sigma_wad>")
		os.Exit(1)
	}

	x, err := wadcli.ParseWAD(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mu, err := wadcli.ParseWAD(flag.Arg(1))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sigma, err := wadcli.ParseWAD(flag.Arg(2))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	prec := wadcli.Prec
	sqrt2 := bignum.Sqrt2(prec)

	z := new(big.Float).SetPrec(prec).Sub(x, mu)
	z.Neg(z)
	z.Quo(z, new(big.Float).SetPrec(prec).Mul(sigma, sqrt2))

	y := bignum.Erfc(z)
	y.Quo(y, bignum.NewFloat(2, prec))

	out, err := wadcli.EncodeWAD(y)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}
