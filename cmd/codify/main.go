// Command codify reads the JSON artifact produced by buildtree and emits
// the Codifier's textual Q0.96/WAD evaluator to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gud-cdf/remez/cmd/internal/wadcli"
	"github.com/gud-cdf/remez/codegen"
	"github.com/gud-cdf/remez/serialize"
)

func main() {
	flag.Parse()

	path := "result.json"
	if flag.NArg() >= 1 {
		path = flag.Arg(0)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fits, err := serialize.Decode(data, wadcli.Prec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	code, err := codegen.Codify(fits)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(code)
}
