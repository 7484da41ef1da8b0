package bignum

import "math/big"

// Derivative approximates f'(x) by a central difference at the precision of
// x. h is chosen relative to x's precision rather than fixed, so callers
// never have to retune it when Prec changes.
func Derivative(f func(*big.Float) *big.Float, x *big.Float) *big.Float {
	prec := x.Prec()

	// h ~ 2^(-prec/3): small enough to resolve curvature at this precision,
	// large enough that f(x+h)-f(x-h) does not cancel to noise.
	h := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec/3))

	xp := new(big.Float).SetPrec(prec).Add(x, h)
	xm := new(big.Float).SetPrec(prec).Sub(x, h)

	d := new(big.Float).SetPrec(prec).Sub(f(xp), f(xm))
	twoH := new(big.Float).SetPrec(prec).Add(h, h)
	return d.Quo(d, twoH)
}

// FindRoot locates a root of g near x0 using the secant method. When g is
// flat across the last two iterates (a plateau, the non-differentiable case
// the Remez error-fixed-point map can produce), it takes a fixed step of
// 1e-6 instead of a secant step. It stops once |x_{n+1} - x_n| <= tol, or
// after maxIter steps.
func FindRoot(g func(*big.Float) *big.Float, x0 *big.Float, tol *big.Float, maxIter int) *big.Float {
	prec := x0.Prec()

	x1 := new(big.Float).SetPrec(prec).Add(x0, NewFloat(1e-6, prec))

	g0 := g(x0)
	g1 := g(x1)

	for i := 0; i < maxIter; i++ {
		denom := new(big.Float).SetPrec(prec).Sub(g1, g0)

		var xNext *big.Float
		if denom.Sign() == 0 {
			// Plateau: nudge by a small bisection-like step in the
			// direction that reduces |g|.
			step := NewFloat(1e-6, prec)
			if g1.Sign() < 0 {
				step.Neg(step)
			}
			xNext = new(big.Float).SetPrec(prec).Add(x1, step)
		} else {
			// x1 - g1*(x1-x0)/(g1-g0)
			num := new(big.Float).SetPrec(prec).Sub(x1, x0)
			num.Mul(num, g1)
			num.Quo(num, denom)
			xNext = new(big.Float).SetPrec(prec).Sub(x1, num)
		}

		diff := new(big.Float).SetPrec(prec).Sub(xNext, x1)
		if Abs(diff).Cmp(tol) <= 0 {
			return xNext
		}

		x0, g0 = x1, g1
		x1 = xNext
		g1 = g(x1)
	}

	return x1
}
