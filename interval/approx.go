package interval

import "math/big"

// ApproxErf evaluates erf(x) from an ordered, endpoint-adjacent list of
// Fits built for f(x) = erf(x/sqrt2)-shaped targets on the positive half
// line: the interval tree only ever covers [0, END], and symmetry is
// exploited here by reflecting negative x across 0.
//
// It walks fits in order, evaluates the first one whose End covers |x|,
// and applies the sign of x to that result. An earlier revision of the
// consumer this is grounded on discarded the piecewise value and
// unconditionally returned sign(x)*1 instead; this is the corrected
// behavior.
func ApproxErf(fits []Fit, x *big.Float) *big.Float {
	prec := x.Prec()
	z := new(big.Float).SetPrec(prec).Abs(x)

	var y *big.Float
	for i := range fits {
		if z.Cmp(&fits[i].End) <= 0 {
			y = fits[i].Fn.Eval(z)
			break
		}
	}
	if y == nil {
		// Beyond the last interval: fall back to the last fit rather than
		// leaving y nil. The Codifier's own beyond-range leaf returns a flat
		// 0 there, a WAD-domain convenience; in HPReal space the nearest
		// fit is the better approximation.
		y = fits[len(fits)-1].Fn.Eval(z)
	}

	if x.Sign() < 0 {
		y = y.Neg(y)
	}
	return y
}
