// Command ppf prints the normal distribution's percent-point function
// (inverse CDF) for three WAD-scaled decimal integer arguments x, u
// (mean), o (standard deviation): ppf(x,u,o) = u - o*sqrt(2)*erfinv(1-2x),
// the erfinv-based variant rather than the superseded erfcinv one. A
// domain violation emits the zero encoding.
package main

import (
	"errors"
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
		fmt.Fprintln(os.Stderr, "usage: ppf <x_wad> <mu_wad> <sigma_wad>")
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

	arg := new(big.Float).SetPrec(prec).Mul(x, bignum.NewFloat(2, prec))
	arg.Sub(bignum.NewFloat(1, prec), arg)

	inv, err := bignum.Erfinv(arg)
	if errors.Is(err, bignum.ErrDomain) {
		fmt.Println(wadcli.Zero())
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sqrt2 := bignum.Sqrt2(prec)
	y := new(big.Float).SetPrec(prec).Mul(sigma, sqrt2)
	y.Mul(y, inv)
	y.Sub(mu, y)

	out, err := wadcli.EncodeWAD(y)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}
