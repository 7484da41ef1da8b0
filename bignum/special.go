package bignum

import (
	"errors"
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// ErrDomain is returned by Erfinv/Erfcinv when the argument falls outside
// the function's domain.
var ErrDomain = errors.New("bignum: argument outside function domain")

// Pi returns the constant π at the given precision, via Machin's formula
// π = 16·arctan(1/5) - 4·arctan(1/239). Both arctangents are evaluated by
// their alternating Taylor series, which converges quickly for arguments
// this small.
func Pi(prec uint) *big.Float {
	a := arctanSeries(NewFloat(0.2, prec), prec)
	b := arctanSeries(new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), NewFloat(239, prec)), prec)

	pi := new(big.Float).SetPrec(prec).Mul(a, NewFloat(16, prec))
	b.Mul(b, NewFloat(4, prec))
	return pi.Sub(pi, b)
}

func arctanSeries(x *big.Float, prec uint) *big.Float {
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)

	term := new(big.Float).SetPrec(prec).Set(x)
	sum := new(big.Float).SetPrec(prec).Set(x)

	eps := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)-8)

	for n := 1; ; n++ {
		term.Mul(term, x2)
		term.Neg(term)

		denom := NewFloat(float64(2*n+1), prec)
		delta := new(big.Float).SetPrec(prec).Quo(term, denom)
		sum.Add(sum, delta)

		if Abs(delta).Cmp(eps) <= 0 {
			break
		}
	}

	return sum
}

// lnGammaHalf is ln(Γ(1/2)) = ln(√π), used by the regularized incomplete
// gamma series/continued fraction that backs Erf.
func lnGammaHalf(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Quo(bigfloat.Log(Pi(prec)), NewFloat(2, prec))
}

// Erf computes the error function at arbitrary precision, via the
// regularized lower incomplete gamma function identity
// erf(x) = sign(x)·P(1/2, x²) (Abramowitz & Stegun 6.5.16 / Numerical
// Recipes §6.2). P is evaluated by its Taylor series for x² < 3/2 and by
// its continued fraction (as 1-Q) otherwise, the same split Numerical
// Recipes uses for the incomplete gamma function in general.
func Erf(x *big.Float) *big.Float {
	prec := x.Prec()

	if x.Sign() == 0 {
		return Zero(prec)
	}

	t := Abs(x)
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)

	var p *big.Float
	threshold := NewFloat(1.5, prec)
	if t2.Cmp(threshold) < 0 {
		p = gammaPHalfSeries(t2, prec)
	} else {
		p = new(big.Float).SetPrec(prec).Sub(NewFloat(1, prec), gammaHalfCF(t2, prec))
	}

	if x.Sign() < 0 {
		p.Neg(p)
	}
	return p
}

// Erfc returns 1 - Erf(x), computed directly from the incomplete-gamma
// split rather than by subtracting Erf from 1, to avoid cancellation for
// large x (where Erf(x) is extremely close to 1).
func Erfc(x *big.Float) *big.Float {
	prec := x.Prec()

	if x.Sign() == 0 {
		return NewFloat(1, prec)
	}

	t := Abs(x)
	t2 := new(big.Float).SetPrec(prec).Mul(t, t)

	var q *big.Float
	threshold := NewFloat(1.5, prec)
	if t2.Cmp(threshold) < 0 {
		q = new(big.Float).SetPrec(prec).Sub(NewFloat(1, prec), gammaPHalfSeries(t2, prec))
	} else {
		q = gammaHalfCF(t2, prec)
	}

	if x.Sign() > 0 {
		return q
	}

	// erfc(-t) = 2 - erfc(t)
	return new(big.Float).SetPrec(prec).Sub(NewFloat(2, prec), q)
}

// gammaPHalfSeries evaluates P(1/2, x) by its defining series, for x < 3/2.
func gammaPHalfSeries(x *big.Float, prec uint) *big.Float {
	const a = 0.5

	ap := NewFloat(a, prec)
	sum := new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), ap)
	del := new(big.Float).SetPrec(prec).Set(sum)

	eps := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)-8)

	for n := 0; n < 100000; n++ {
		ap.Add(ap, NewFloat(1, prec))
		del.Mul(del, x)
		del.Quo(del, ap)
		sum.Add(sum, del)

		if Abs(del).Cmp(new(big.Float).SetPrec(prec).Mul(Abs(sum), eps)) <= 0 {
			break
		}
	}

	// sum * exp(-x + a*ln(x) - lnGamma(a))
	logTerm := new(big.Float).SetPrec(prec).Neg(x)
	logTerm.Add(logTerm, new(big.Float).SetPrec(prec).Mul(NewFloat(a, prec), bigfloat.Log(x)))
	logTerm.Sub(logTerm, lnGammaHalf(prec))

	return sum.Mul(sum, bigfloat.Exp(logTerm))
}

// gammaHalfCF evaluates Q(1/2, x) = 1-P(1/2, x) by its continued fraction
// (modified Lentz's method), for x >= 3/2.
func gammaHalfCF(x *big.Float, prec uint) *big.Float {
	const a = 0.5

	fpmin := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)*4)
	eps := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)-8)

	b := new(big.Float).SetPrec(prec).Sub(new(big.Float).SetPrec(prec).Add(x, NewFloat(1, prec)), NewFloat(a, prec))
	c := new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), fpmin)
	d := new(big.Float).SetPrec(prec).Quo(NewFloat(1, prec), b)
	h := new(big.Float).SetPrec(prec).Set(d)

	for i := 1; i < 100000; i++ {
		an := NewFloat(-float64(i), prec)
		an.Mul(an, new(big.Float).SetPrec(prec).Sub(NewFloat(float64(i), prec), NewFloat(a, prec)))

		b.Add(b, NewFloat(2, prec))

		d.Mul(an, d)
		d.Add(d, b)
		if Abs(d).Cmp(fpmin) < 0 {
			d.Set(fpmin)
		}

		c.Set(new(big.Float).SetPrec(prec).Quo(an, c))
		c.Add(c, b)
		if Abs(c).Cmp(fpmin) < 0 {
			c.Set(fpmin)
		}

		d.Quo(NewFloat(1, prec), d)

		del := new(big.Float).SetPrec(prec).Mul(d, c)
		h.Mul(h, del)

		if Abs(new(big.Float).SetPrec(prec).Sub(del, NewFloat(1, prec))).Cmp(eps) <= 0 {
			break
		}
	}

	logTerm := new(big.Float).SetPrec(prec).Neg(x)
	logTerm.Add(logTerm, new(big.Float).SetPrec(prec).Mul(NewFloat(a, prec), bigfloat.Log(x)))
	logTerm.Sub(logTerm, lnGammaHalf(prec))

	return h.Mul(h, bigfloat.Exp(logTerm))
}

// Erfinv computes the inverse error function: erfinv(y) is the x such that
// Erf(x) = y. Domain is (-1, 1); outside it, ErrDomain is returned.
func Erfinv(y *big.Float) (*big.Float, error) {
	prec := y.Prec()

	one := NewFloat(1, prec)
	if Abs(y).Cmp(one) >= 0 {
		return nil, ErrDomain
	}
	if y.Sign() == 0 {
		return Zero(prec), nil
	}

	y64, _ := y.Float64()
	x0 := NewFloat(math.Erfinv(y64), prec)

	g := func(x *big.Float) *big.Float {
		return new(big.Float).SetPrec(prec).Sub(Erf(x), y)
	}

	tol := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)+4)
	return FindRoot(g, x0, tol, 200), nil
}

// Erfcinv computes the inverse complementary error function: erfcinv(y) is
// the x such that Erfc(x) = y. Domain is (0, 2).
func Erfcinv(y *big.Float) (*big.Float, error) {
	prec := y.Prec()
	one := NewFloat(1, prec)
	arg := new(big.Float).SetPrec(prec).Sub(one, y)
	return Erfinv(arg)
}

// Sqrt2 returns √2 at the given precision.
func Sqrt2(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).Sqrt(NewFloat(2, prec))
}
