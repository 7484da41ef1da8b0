// Package interval implements the Interval Builder: recursive bisection of
// [Start, End] until every leaf's rational Remez fit meets a target peak
// relative error.
package interval

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/gud-cdf/remez/bignum"
	"github.com/gud-cdf/remez/utils/concurrency"
)

// Fit is a single leaf of the materialized interval tree: a rational
// approximation of Function valid on [Start, End] with peak relative
// error Err.
type Fit struct {
	Start, End big.Float
	Fn         bignum.Rational
	Err        big.Float
}

// BuildParameters groups the inputs to Build.
type BuildParameters struct {
	N, M int

	Start, End *big.Float

	// Function is the target function approximated on every leaf.
	Function func(*big.Float) *big.Float

	TargetError *big.Float

	// Tolerance is the absolute tolerance passed through to the extremum
	// bisection inside each rational Remez call.
	Tolerance *big.Float

	Rounds      int
	SampleScale int

	// Parallel, when set, runs the two halves of a failed fit's bisection
	// concurrently. Each split gets a freshly allocated branch manager
	// (see concurrency.NewBranchManager) rather than a pool shared across
	// the whole tree, so waiting on one split can never block on unrelated
	// work happening elsewhere in the recursion.
	Parallel bool

	Verbose bool
}

// Build recursively bisects [params.Start, params.End] until every leaf's
// Remez fit meets params.TargetError, returning an ordered, non-overlapping,
// endpoint-adjacent list of Fits covering the full range.
func Build(params BuildParameters) ([]Fit, error) {
	return build(params, params.Start, params.End)
}

func build(params BuildParameters, start, end *big.Float) ([]Fit, error) {
	prec := start.Prec()

	if params.Verbose {
		sf, _ := start.Float64()
		ef, _ := end.Float64()
		fmt.Fprintf(os.Stderr, "interval.Build: trying [%.8f; %.8f]\n", sf, ef)
	}

	r, peakErr, err := bignum.RationalRemez(bignum.RationalRemezParameters{
		N: params.N, M: params.M,
		Start: start, End: end,
		Function:    params.Function,
		Tol:         params.Tolerance,
		Rounds:      params.Rounds,
		SampleScale: params.SampleScale,
		Verbose:     params.Verbose,
	})

	noFit := errors.Is(err, bignum.ErrInsufficientExtrema) || errors.Is(err, bignum.ErrSingularMatrix)
	if err != nil && !noFit {
		return nil, fmt.Errorf("interval.Build: fatal remez failure on [%s, %s]: %w", start.Text('e', 10), end.Text('e', 10), err)
	}

	if noFit || peakErr.Cmp(params.TargetError) > 0 {
		if params.Verbose {
			fmt.Fprintf(os.Stderr, "interval.Build: bisecting [%.8s]\n", start.Text('e', 10))
		}

		mid := new(big.Float).SetPrec(prec).Add(start, end)
		mid.Quo(mid, bignum.NewFloat(2, prec))

		if params.Parallel {
			return buildParallel(params, start, mid, end)
		}

		left, err := build(params, start, mid)
		if err != nil {
			return nil, err
		}
		right, err := build(params, mid, end)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	}

	return []Fit{{Start: *start, End: *end, Fn: *r, Err: *peakErr}}, nil
}

func buildParallel(params BuildParameters, start, mid, end *big.Float) ([]Fit, error) {
	var left, right []Fit
	var leftErr, rightErr error

	rm := concurrency.NewBranchManager(2)

	rm.Run(func(struct{}) error {
		left, leftErr = build(params, start, mid)
		return leftErr
	})
	rm.Run(func(struct{}) error {
		right, rightErr = build(params, mid, end)
		return rightErr
	})

	if err := rm.Wait(); err != nil {
		return nil, err
	}

	return append(left, right...), nil
}
