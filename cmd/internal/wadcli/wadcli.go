// Package wadcli implements the shared argument-parsing and result-encoding
// plumbing for the single-value CLI tools: positional decimal integers
// scaled by WAD (10^18) in, a single 0x-prefixed 64 hex digit 256-bit
// unsigned integer out, two's complement for negative results.
package wadcli

import (
	"fmt"
	"math/big"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/codegen"
)

// Prec is the working precision of every CLI tool: 60 decimal digits.
var Prec = bignum.DecimalPrec(60)

// ParseWAD parses a positional decimal integer argument scaled by WAD
// (10^18) into the real value it represents, at Prec bits of precision.
func ParseWAD(arg string) (*big.Float, error) {
	n, ok := new(big.Int).SetString(arg, 10)
	if !ok {
		return nil, fmt.Errorf("wadcli: %q is not a decimal integer", arg)
	}

	x := new(big.Float).SetPrec(Prec).SetInt(n)
	return x.Quo(x, new(big.Float).SetPrec(Prec).SetInt(codegen.WAD)), nil
}

// EncodeWAD renders x scaled by WAD as a 0x-prefixed 64 hex digit string.
func EncodeWAD(x *big.Float) (string, error) {
	n, err := codegen.ToWAD(x)
	if err != nil {
		return "", err
	}
	return codegen.Hex256(n), nil
}

// Zero is the domain-violation fallback output: 0 encoded as 64 hex digits.
func Zero() string {
	return codegen.Hex256(big.NewInt(0))
}
