package bignum

import "math/big"

// FindExtremum locates a single extremum of f inside (a, b) by bisecting on
// the sign of f'. Its precondition is that sign(f'(a)) and sign(f'(b)) are
// defined, non-zero and opposite; violating it is a caller bug (the Remez
// round that drives this always samples on both sides of a detected sign
// change first), so it is not reported as an error.
func FindExtremum(f func(*big.Float) *big.Float, a, b *big.Float, tol *big.Float) *big.Float {
	prec := a.Prec()

	fp := func(x *big.Float) *big.Float { return Derivative(f, x) }

	sa := Sign(fp(a))
	aCur := new(big.Float).SetPrec(prec).Set(a)
	bCur := new(big.Float).SetPrec(prec).Set(b)

	mid := Mid(aCur, bCur)

	for Abs(new(big.Float).SetPrec(prec).Sub(aCur, bCur)).Cmp(tol) > 0 {
		sm := Sign(fp(mid))
		if sm == 0 {
			return mid
		}
		if sm == sa {
			aCur.Set(mid)
			sa = Sign(fp(aCur))
		} else {
			bCur.Set(mid)
		}
		mid = Mid(aCur, bCur)
	}

	return mid
}

// FindExtrema samples f on `samples` equally spaced points across
// [start, end], and for every adjacent pair whose derivative sign differs,
// refines an extremum with FindExtremum. start and end are always included
// in the result — they are not necessarily extrema of f, but the reference
// selector needs them as candidates to anchor the outermost sign run.
func FindExtrema(f func(*big.Float) *big.Float, start, end *big.Float, tol *big.Float, samples int) []big.Float {
	prec := start.Prec()

	xs := make([]big.Float, samples)
	width := new(big.Float).SetPrec(prec).Sub(end, start)
	for i := 0; i < samples; i++ {
		frac := new(big.Float).SetPrec(prec).Quo(NewFloat(float64(i), prec), NewFloat(float64(samples-1), prec))
		xi := new(big.Float).SetPrec(prec).Mul(width, frac)
		xi.Add(xi, start)
		xs[i] = *xi
	}

	signs := make([]int, samples)
	for i := range xs {
		signs[i] = Sign(Derivative(f, &xs[i]))
	}

	result := make([]big.Float, 0, samples+2)
	result = append(result, *new(big.Float).SetPrec(prec).Set(start))

	for i := 0; i < samples-1; i++ {
		if signs[i] != signs[i+1] {
			ext := FindExtremum(f, &xs[i], &xs[i+1], tol)
			result = append(result, *ext)
		}
	}

	result = append(result, *new(big.Float).SetPrec(prec).Set(end))

	return result
}
