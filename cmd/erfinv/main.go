// Command erfinv prints erfinv(x) for a single WAD-scaled decimal integer
// argument x, as a 0x-prefixed 64 hex digit 256-bit unsigned integer. A
// domain violation (|x| >= 1) emits the zero encoding rather than failing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/cmd/internal/wadcli"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: erfinv <x_wad>")
		os.Exit(1)
	}

	x, err := wadcli.ParseWAD(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	y, err := bignum.Erfinv(x)
	if errors.Is(err, bignum.ErrDomain) {
		fmt.Println(wadcli.Zero())
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	out, err := wadcli.EncodeWAD(y)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(out)
}
