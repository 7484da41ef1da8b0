// Command erf prints erf(x) for a single WAD-scaled decimal integer
// argument x, as a 0x-prefixed 64 hex digit 256-bit unsigned integer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/cmd/internal/wadcli"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: erf <x_wad>")
		os.Exit(1)
	}

	x, err := wadcli.ParseWAD(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	y := bignum.Erf(x)

	out, err := wadcli.EncodeWAD(y)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}
