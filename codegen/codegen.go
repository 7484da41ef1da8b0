// Package codegen implements the Codifier: it emits a textual Yul-like
// program (add, mul, sar, sdiv, lt, if, break, let) that evaluates a
// piecewise rational approximation in Q0.96 fixed point, scaled to WAD
// (10^18) integers.
package codegen

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/gud-cdf/remez/interval"
)

// POW is the number of fractional bits of the Q0.96 fixed-point format used
// for every intermediate polynomial evaluation.
const POW = 96

// WAD is the fixed-point scale of the emitted program's final result.
var WAD = big.NewInt(1_000_000_000_000_000_000)

// X128One is the Q0.96 representation of 1.0 (named for the original
// library's Q0.x128 ancestor of this format; the module itself only ever
// uses the 96-fractional-bit variant).
var X128One = new(big.Int).Lsh(big.NewInt(1), POW)

// twoPow256 is the modulus used for two's-complement encoding of negative
// fixed-point integers.
var twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)

// overflowBound is the arithmetic-overflow precondition: a fixed-point
// magnitude must stay below 1<<255 or the two's-complement encoding below
// would alias a negative value.
var overflowBound = new(big.Int).Lsh(big.NewInt(1), 255)

// ErrOverflow signals a fixed-point magnitude that does not fit below
// 1<<255.
var ErrOverflow = errors.New("codegen: fixed-point magnitude overflows 255 bits")

// ErrNotUnity signals a normalized leading coefficient that failed to equal
// the fixed-point representation of 1.
var ErrNotUnity = errors.New("codegen: normalized leading coefficient is not fixed-point 1")

// toFixed converts x to a fixed-point integer at the given scale (WAD or
// the Q0.96 X128One), two's-complement encoding negative values.
func toFixed(x *big.Float, one *big.Int) (*big.Int, error) {
	prec := x.Prec()
	abs := new(big.Float).SetPrec(prec).Abs(x)

	scaled := new(big.Float).SetPrec(prec).SetInt(one)
	scaled.Mul(scaled, abs)

	whole, _ := scaled.Int(nil)
	if whole.Cmp(overflowBound) >= 0 {
		return nil, fmt.Errorf("%w: %s", ErrOverflow, whole.String())
	}

	if x.Sign() < 0 && whole.Sign() != 0 {
		return new(big.Int).Sub(twoPow256, whole), nil
	}
	return whole, nil
}

// ToX128 converts x to its Q0.96 fixed-point integer encoding.
func ToX128(x *big.Float) (*big.Int, error) { return toFixed(x, X128One) }

// ToWAD converts x to its WAD (10^18) fixed-point integer encoding.
func ToWAD(x *big.Float) (*big.Int, error) { return toFixed(x, WAD) }

// Hex256 renders n as a 0x-prefixed, zero-padded 64 hex digit string, the
// CLI surface's 256-bit unsigned integer encoding.
func Hex256(n *big.Int) string {
	return fmt.Sprintf("0x%064x", n)
}

// normalize divides every coefficient by coeffs[0], returning the
// normalized slice and the divisor. Coefficients here are
// highest-degree-first, so coeffs[0] is the leading term.
func normalize(coeffs []big.Float) ([]big.Float, *big.Float) {
	prec := coeffs[0].Prec()
	divisor := new(big.Float).SetPrec(prec).Set(&coeffs[0])

	out := make([]big.Float, len(coeffs))
	for i := range coeffs {
		out[i] = *new(big.Float).SetPrec(prec).Quo(&coeffs[i], divisor)
	}
	return out, divisor
}

// makePoly emits a Horner evaluation of coeffs (highest-degree-first,
// already converted to Q0.96 fixed point) reading varIn and writing
// varOut.
func makePoly(coeffs []big.Int, varIn, varOut string) (string, error) {
	if coeffs[0].Cmp(X128One) != 0 {
		return "", fmt.Errorf("%w: got %s", ErrNotUnity, coeffs[0].String())
	}

	var b strings.Builder
	if len(coeffs) > 1 {
		fmt.Fprintf(&b, "let %s := add(%s, %s)\n", varOut, varIn, hexOf(&coeffs[1]))
	} else {
		fmt.Fprintf(&b, "let %s := %s\n", varOut, varIn)
	}

	for i := 2; i < len(coeffs); i++ {
		fmt.Fprintf(&b, "%s := add(sar(POW, mul(%s, %s)), %s)\n", varOut, varOut, varIn, hexOf(&coeffs[i]))
	}

	return b.String(), nil
}

// hexOf formats a fixed-point integer produced by toFixed, which has
// already applied two's-complement encoding to negative magnitudes and so
// is always non-negative here.
func hexOf(n *big.Int) string {
	return fmt.Sprintf("0x%x", n)
}

// codifyLeaf emits the evaluator body for a single Fit: normalize ps and
// qs (highest-degree-first) by their leading term, Horner-evaluate both in
// Q0.96, then combine as sdiv(mul(to_wad(p0/q0), num), denom).
func codifyLeaf(f *interval.Fit, varIn, varOut string) (string, error) {
	ps, p0 := normalize(f.Fn.Ps)
	qs, q0 := normalize(f.Fn.Qs)

	first := new(big.Float).SetPrec(p0.Prec()).Quo(p0, q0)

	psFixed, err := toFixedSlice(ps)
	if err != nil {
		return "", err
	}
	qsFixed, err := toFixedSlice(qs)
	if err != nil {
		return "", err
	}
	firstFixed, err := ToWAD(first)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	numCode, err := makePoly(psFixed, varIn, "num")
	if err != nil {
		return "", err
	}
	b.WriteString(numCode)

	denomCode, err := makePoly(qsFixed, varIn, "denom")
	if err != nil {
		return "", err
	}
	b.WriteString(denomCode)

	fmt.Fprintf(&b, "%s := sdiv(mul(%s, num), denom)\n", varOut, hexOf(firstFixed))

	return b.String(), nil
}

func toFixedSlice(xs []big.Float) ([]big.Int, error) {
	out := make([]big.Int, len(xs))
	for i := range xs {
		n, err := ToX128(&xs[i])
		if err != nil {
			return nil, err
		}
		out[i] = *n
	}
	return out, nil
}

// Codify is the top-level entry point: emits the full if-tree evaluator for
// an ordered, endpoint-adjacent list of Fits, appending the "beyond the
// last interval" fallback (y := 0; break).
func Codify(fits []interval.Fit) (string, error) {
	return codifyRanges("z", "y", fits, true)
}

// codifyRanges recursively emits the range dispatch tree: for three or
// fewer effective leaves (including the trailing has_end case), emit a
// linear if-chain; otherwise split the leaf list in half around the upper
// half's start, wrap the lower half in an "if lt(varIn, split)" and fall
// through unconditionally into the upper half.
func codifyRanges(varIn, varOut string, fits []interval.Fit, hasEnd bool) (string, error) {
	totalLen := len(fits)
	if hasEnd {
		totalLen++
	}

	if totalLen <= 3 {
		var b strings.Builder
		for i := range fits {
			needsIf := i+1 < totalLen

			endFixed, err := ToX128(&fits[i].End)
			if err != nil {
				return "", err
			}

			if needsIf {
				fmt.Fprintf(&b, "if lt(%s, %s) {\n", varIn, hexOf(endFixed))
			}

			leaf, err := codifyLeaf(&fits[i], varIn, varOut)
			if err != nil {
				return "", err
			}
			b.WriteString(leaf)
			b.WriteString("break\n")

			if needsIf {
				b.WriteString("}\n")
			}
		}

		if hasEnd {
			fmt.Fprintf(&b, "%s := 0\n", varOut)
			b.WriteString("break\n")
		}

		return b.String(), nil
	}

	half := totalLen / 2
	h1 := fits[:half]
	h2 := fits[half:]

	splitFixed, err := ToX128(&h2[0].Start)
	if err != nil {
		return "", err
	}

	lower, err := codifyRanges(varIn, varOut, h1, false)
	if err != nil {
		return "", err
	}
	upper, err := codifyRanges(varIn, varOut, h2, hasEnd)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "if lt(%s, %s) {\n", varIn, hexOf(splitFixed))
	b.WriteString(lower)
	b.WriteString("}\n")
	b.WriteString(upper)

	return b.String(), nil
}
