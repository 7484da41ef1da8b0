package bignum

import (
	"fmt"
	"math/big"
	"os"
)

// Rational is a pair of polynomials P, Q such that R(x) = P(x)/Q(x),
// evaluated by Horner's method.
//
// Ps and Qs are stored highest-degree-first (Ps[0] is the leading
// coefficient), the convention the public artifact and the Horner
// evaluator in this type consume. This is the opposite of the convention
// used internally while solving the linearized Remez system (lowest-degree-
// first, Ps[0] the constant term) — RationalRemez is the single place that
// reverses between the two; no other code in this module should need to.
//
// After a successful fit, Qs' constant term (Qs[len(Qs)-1] in this
// highest-degree-first storage) is exactly 1 (monic denominator).
type Rational struct {
	Ps []big.Float
	Qs []big.Float
}

// Eval returns R(x) = P(x)/Q(x).
func (r *Rational) Eval(x *big.Float) *big.Float {
	p := Polyval(r.Ps, x)
	q := Polyval(r.Qs, x)
	return p.Quo(p, q)
}

// Clone returns a deep copy of r.
func (r *Rational) Clone() *Rational {
	ps := make([]big.Float, len(r.Ps))
	for i := range ps {
		ps[i].SetPrec(r.Ps[i].Prec()).Set(&r.Ps[i])
	}
	qs := make([]big.Float, len(r.Qs))
	for i := range qs {
		qs[i].SetPrec(r.Qs[i].Prec()).Set(&r.Qs[i])
	}
	return &Rational{Ps: ps, Qs: qs}
}

// RationalRemezParameters groups the inputs to RationalRemez.
type RationalRemezParameters struct {
	N, M int

	Start, End *big.Float

	// Function is the target function f to approximate on [Start, End].
	Function func(*big.Float) *big.Float

	// Tol is the absolute tolerance used by the extremum bisection (§4.2).
	Tol *big.Float

	Rounds int

	// SampleScale controls the extrema-finder sampling density: the
	// number of samples per round is w*SampleScale. Defaults to 80 if 0.
	SampleScale int

	Verbose bool
}

// RationalRemez fits a degree-(N,M) rational approximation of Function on
// [Start, End] by the rational Remez exchange algorithm. It returns the
// fitted Rational and the peak relative error over the final reference.
// ErrSingularMatrix and ErrInsufficientExtrema bubble up unwrapped from the
// linear solver and reference selector respectively, for the Interval
// Builder to catch.
func RationalRemez(p RationalRemezParameters) (*Rational, *big.Float, error) {
	n, m := p.N, p.M
	w := n + m + 2
	prec := p.Start.Prec()

	sampleScale := p.SampleScale
	if sampleScale == 0 {
		sampleScale = 80
	}

	ref := fullRange(p.Start, p.End, w)

	var peakErr *big.Float
	var approx *Rational

	for round := 0; round < p.Rounds; round++ {
		ys := make([]big.Float, w)
		for i := range ref {
			ys[i] = *p.Function(&ref[i])
		}

		ps, qsTail, _, err := solveRational(n, m, ref, ys, prec)
		if err != nil {
			return nil, nil, err
		}

		qs := make([]big.Float, m+1)
		qs[0] = *NewFloat(1, prec)
		copy(qs[1:], qsTail)

		approx = &Rational{Ps: reversed(ps), Qs: reversed(qs)}

		errFn := func(x *big.Float) *big.Float {
			y := approx.Eval(x)
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
			fy := p.Function(&ref[i])
			ry := approx.Eval(&ref[i])
			rel := new(big.Float).SetPrec(prec).Quo(fy, ry)
			rel = rel.Sub(NewFloat(1, prec), rel)
			rel = Abs(rel)
			if rel.Cmp(newPeakErr) > 0 {
				newPeakErr = rel
			}
		}

		if peakErr != nil && newPeakErr.Cmp(peakErr) == 0 {
			peakErr = newPeakErr
			break
		}
		peakErr = newPeakErr

		if p.Verbose {
			fmt.Fprintf(os.Stderr, "RationalRemez round %d: peak_err=%s\n", round, peakErr.Text('e', 10))
		}
	}

	return approx, peakErr, nil
}

// solveRational solves one Remez round's linearized system: given the
// reference ref and target values ys, finds ps (length n+1, lowest-degree
// first), qsTail (length m, lowest-degree first, excluding the monic
// constant term) and the equioscillation error E, by finding the fixed
// point of the map E -> solvedE(E) starting at 0.
func solveRational(n, m int, ref, ys []big.Float, prec uint) (ps, qsTail []big.Float, e *big.Float, err error) {
	var solveErr error

	solvedAt := func(guessedE *big.Float) (*big.Float, []big.Float, []big.Float) {
		p, q, e, serr := solveWithAssumedError(n, m, guessedE, ref, ys, prec)
		if serr != nil {
			solveErr = serr
		}
		return e, p, q
	}

	g := func(guessedE *big.Float) *big.Float {
		solvedE, _, _ := solvedAt(guessedE)
		if solveErr != nil {
			return Zero(prec)
		}
		d := new(big.Float).SetPrec(prec).Sub(solvedE, guessedE)
		return d
	}

	tol := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec)+4)
	foundE := FindRoot(g, Zero(prec), tol, 100)
	if solveErr != nil {
		return nil, nil, nil, solveErr
	}

	solvedE, ps, qsTail := solvedAt(foundE)
	if solveErr != nil {
		return nil, nil, nil, solveErr
	}

	return ps, qsTail, solvedE, nil
}

// solveWithAssumedError builds and solves the linearized rational
// best-approximation system for a given guessed equioscillation error,
// returning ps (length n+1), qsTail (length m) and the solved error, all
// lowest-degree first for ps/qsTail.
func solveWithAssumedError(n, m int, guessedErr *big.Float, ref, ys []big.Float, prec uint) (ps, qsTail []big.Float, solvedErr *big.Float, err error) {
	w := len(ref)

	matrix := make([][]big.Float, w)
	vector := make([]big.Float, w)

	for i := 0; i < w; i++ {
		xi := &ref[i]
		yi := &ys[i]
		sign := 1.0
		if i%2 == 1 {
			sign = -1.0
		}

		row := make([]big.Float, n+1+m+1)

		pow := NewFloat(1, prec)
		for j := 0; j <= n; j++ {
			row[j] = *new(big.Float).SetPrec(prec).Set(pow)
			pow.Mul(pow, xi)
		}

		pow = NewFloat(1, prec)
		for j := 1; j <= m; j++ {
			pow.Mul(pow, xi)

			coeff := new(big.Float).SetPrec(prec).Mul(NewFloat(sign, prec), guessedErr)
			coeff.Sub(coeff, yi)
			coeff.Mul(coeff, pow)
			row[n+j] = *coeff
		}

		row[n+m+1] = *NewFloat(sign, prec)

		matrix[i] = row
		vector[i] = *new(big.Float).SetPrec(prec).Set(yi)
	}

	solved, serr := SolveLinear(matrix, vector)
	if serr != nil {
		return nil, nil, nil, serr
	}

	ps = make([]big.Float, n+1)
	copy(ps, solved[:n+1])
	qsTail = make([]big.Float, m)
	copy(qsTail, solved[n+1:n+1+m])
	solvedErr = &solved[n+1+m]

	return ps, qsTail, solvedErr, nil
}

func fullRange(start, end *big.Float, count int) []big.Float {
	prec := start.Prec()
	out := make([]big.Float, count)
	width := new(big.Float).SetPrec(prec).Sub(end, start)
	for i := 0; i < count; i++ {
		frac := new(big.Float).SetPrec(prec).Quo(NewFloat(float64(i), prec), NewFloat(float64(count-1), prec))
		xi := new(big.Float).SetPrec(prec).Mul(width, frac)
		xi.Add(xi, start)
		out[i] = *xi
	}
	return out
}

func reversed(xs []big.Float) []big.Float {
	out := make([]big.Float, len(xs))
	for i := range xs {
		out[i] = xs[len(xs)-1-i]
	}
	return out
}
