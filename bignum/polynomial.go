package bignum

import (
	"fmt"
	"math/big"
	"os"
)

// Polynomial is a single polynomial evaluated by Horner's method, stored
// highest-degree-first (same convention as Rational.Ps/Qs).
type Polynomial struct {
	Coeffs []big.Float
}

// Eval returns P(x).
func (p *Polynomial) Eval(x *big.Float) *big.Float {
	return Polyval(p.Coeffs, x)
}

// PolynomialRemezParameters groups the inputs to PolynomialRemez, the
// polynomial-only sibling of RationalRemez: an identical round skeleton
// with M=0 and no denominator.
type PolynomialRemezParameters struct {
	N int

	Start, End *big.Float

	Function func(*big.Float) *big.Float

	Tol *big.Float

	Rounds int

	// SampleScale controls the extrema-finder sampling density: the
	// number of samples per round is w*SampleScale. Defaults to 30 if 0.
	SampleScale int

	Verbose bool
}

// PolynomialRemez fits a degree-N polynomial minimax approximation of
// Function on [Start, End]. Unlike RationalRemez, the peak error it reports
// is the absolute peak error over the final reference — the polynomial
// variant has no natural notion of relative error near a zero of Function.
func PolynomialRemez(p PolynomialRemezParameters) (*Polynomial, *big.Float, error) {
	n := p.N
	w := n + 2
	prec := p.Start.Prec()

	sampleScale := p.SampleScale
	if sampleScale == 0 {
		sampleScale = 30
	}

	ref := fullRange(p.Start, p.End, w)

	var peakErr *big.Float
	var poly *Polynomial

	for round := 0; round < p.Rounds; round++ {
		ys := make([]big.Float, w)
		for i := range ref {
			ys[i] = *p.Function(&ref[i])
		}

		matrix := make([][]big.Float, w)
		vector := make([]big.Float, w)
		for i := 0; i < w; i++ {
			xi := &ref[i]
			sign := 1.0
			if i%2 == 1 {
				sign = -1.0
			}

			row := make([]big.Float, n+2)
			pow := NewFloat(1, prec)
			for j := 0; j <= n; j++ {
				row[j] = *new(big.Float).SetPrec(prec).Set(pow)
				pow.Mul(pow, xi)
			}
			row[n+1] = *NewFloat(sign, prec)

			matrix[i] = row
			vector[i] = ys[i]
		}

		solved, err := SolveLinear(matrix, vector)
		if err != nil {
			return nil, nil, err
		}

		coeffs := make([]big.Float, n+1)
		copy(coeffs, solved[:n+1])
		poly = &Polynomial{Coeffs: reversed(coeffs)}

		errFn := func(x *big.Float) *big.Float {
			y := poly.Eval(x)
			return y.Sub(p.Function(x), y)
		}

		extrema := FindExtrema(errFn, p.Start, p.End, p.Tol, w*sampleScale)
		errs := make([]big.Float, len(extrema))
		for i := range extrema {
			errs[i] = *errFn(&extrema[i])
		}

		newRef, err := SelectReference(extrema, errs, w)
		if err != nil {
			return nil, nil, err
		}
		ref = newRef

		newPeakErr := Zero(prec)
		for i := range ref {
			e := Abs(errFn(&ref[i]))
			if e.Cmp(newPeakErr) > 0 {
				newPeakErr = e
			}
		}

		if peakErr != nil && newPeakErr.Cmp(peakErr) == 0 {
			peakErr = newPeakErr
			break
		}
		peakErr = newPeakErr

		if p.Verbose {
			fmt.Fprintf(os.Stderr, "PolynomialRemez round %d: peak_err=%s\n", round, peakErr.Text('e', 10))
		}
	}

	return poly, peakErr, nil
}
