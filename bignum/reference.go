package bignum

import (
	"errors"
	"math/big"
)

// ErrInsufficientExtrema is returned by SelectReference when the candidate
// extrema do not contain w alternating-sign points. The Interval Builder
// treats this as "no fit on this interval" and bisects.
var ErrInsufficientExtrema = errors.New("bignum: insufficient alternating extrema")

// SelectReference extracts, from paired candidate abscissae and their
// signed errors, exactly w points whose error signs strictly alternate and
// whose total |error| is maximal among all contiguous windows of length w
// in the reduced, sign-deduplicated list.
func SelectReference(xs, errs []big.Float, w int) ([]big.Float, error) {
	if len(xs) != len(errs) {
		panic("bignum: SelectReference: xs/errs length mismatch")
	}
	prec := xs[0].Prec()

	var reducedXs, reducedErrs []big.Float

	for i := range xs {
		sign := Sign(&errs[i])

		if len(reducedErrs) == 0 || Sign(&reducedErrs[len(reducedErrs)-1]) != sign {
			reducedXs = append(reducedXs, xs[i])
			reducedErrs = append(reducedErrs, errs[i])
			continue
		}

		last := &reducedErrs[len(reducedErrs)-1]
		if Abs(&errs[i]).Cmp(Abs(last)) > 0 {
			reducedXs[len(reducedXs)-1] = xs[i]
			reducedErrs[len(reducedErrs)-1] = errs[i]
		}
	}

	if len(reducedXs) < w {
		return nil, ErrInsufficientExtrema
	}

	bestOffset := 0
	bestSum := new(big.Float).SetPrec(prec).SetInf(false)
	bestSum.Neg(bestSum)

	for offset := 0; offset+w <= len(reducedXs); offset++ {
		sum := new(big.Float).SetPrec(prec)
		for j := offset; j < offset+w; j++ {
			sum.Add(sum, Abs(&reducedErrs[j]))
		}
		if sum.Cmp(bestSum) > 0 {
			bestSum.Set(sum)
			bestOffset = offset
		}
	}

	out := make([]big.Float, w)
	copy(out, reducedXs[bestOffset:bestOffset+w])
	return out, nil
}
