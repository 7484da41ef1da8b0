// Package bignum implements the arbitrary precision real arithmetic, linear
// solver, extrema finder and Remez exchange primitives used to fit piecewise
// rational approximations of smooth functions.
//
// All numeric state is kept as *big.Float at a caller-chosen precision; the
// package never reads or mutates a package-level precision setting. Callers
// fix the precision once, at the boundary where they build a
// RationalRemezParameters or PolynomialRemezParameters, and every value
// produced downstream inherits it.
package bignum

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// DecimalPrec converts a target number of correct decimal digits into the
// bit precision to pass to big.Float.SetPrec, since math/big is a binary
// precision library but the rest of this package reasons in decimal
// digits.
func DecimalPrec(digits int) uint {
	// log2(10) ~= 3.3219280948873623, rounded up with a few guard bits.
	return uint(float64(digits)*3.3219280948873623) + 8
}

// NewFloat allocates a *big.Float set to v at the given precision.
func NewFloat(v float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(v)
}

// Zero returns a new *big.Float of value 0 at the given precision.
func Zero(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x *big.Float) int {
	return x.Sign()
}

// Abs returns |x| as a new value at x's precision.
func Abs(x *big.Float) *big.Float {
	return new(big.Float).SetPrec(x.Prec()).Abs(x)
}

// Mid returns the midpoint (a+b)/2 at the precision of a.
func Mid(a, b *big.Float) *big.Float {
	m := new(big.Float).SetPrec(a.Prec()).Add(a, b)
	return m.Quo(m, NewFloat(2, a.Prec()))
}

// Min returns the smaller of a, b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts x to [lo, hi].
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// Polyval evaluates a polynomial at x by Horner's method. coeffs is
// highest-degree-first, matching the public Rational/artifact convention
// (see Rational's doc comment for the two coefficient-order conventions used
// across this package).
func Polyval(coeffs []big.Float, x *big.Float) *big.Float {
	prec := x.Prec()
	y := new(big.Float).SetPrec(prec).Set(&coeffs[0])
	for i := 1; i < len(coeffs); i++ {
		y.Mul(y, x)
		y.Add(y, &coeffs[i])
	}
	return y
}
