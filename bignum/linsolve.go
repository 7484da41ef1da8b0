package bignum

import (
	"errors"
	"math/big"
)

// ErrSingularMatrix is returned by SolveLinear when a pivot is exactly zero,
// i.e. the reference set used to build the linear system is degenerate.
// This is not a programmer error: callers (the Rational and Polynomial
// Remez rounds) treat it as "this reference is degenerate" and report it
// up to the Interval Builder, which recovers by bisecting.
var ErrSingularMatrix = errors.New("bignum: singular matrix")

// SolveLinear solves A·x = b in place for a dense n×n system of HPReals by
// Gauss-Jordan elimination, and returns x (b is overwritten and returned).
//
// Plain Gauss-Jordan without pivoting is tolerable here since references
// are well separated and precision is high, but this implementation adds
// partial pivoting anyway, selecting the largest-magnitude candidate in
// each column before eliminating, since it costs nothing and tolerates a
// wider range of reference spacings without losing precision.
func SolveLinear(a [][]big.Float, b []big.Float) ([]big.Float, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, errors.New("bignum: SolveLinear: dimension mismatch")
	}
	prec := b[0].Prec()

	tmp := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {
		pivotRow := i
		best := new(big.Float).SetPrec(prec).Abs(&a[i][i])
		for r := i + 1; r < n; r++ {
			mag := tmp.Abs(&a[r][i])
			if mag.Cmp(best) > 0 {
				best.Set(mag)
				pivotRow = r
			}
		}
		if pivotRow != i {
			a[i], a[pivotRow] = a[pivotRow], a[i]
			b[i], b[pivotRow] = b[pivotRow], b[i]
		}

		pivot := &a[i][i]
		if pivot.Sign() == 0 {
			return nil, ErrSingularMatrix
		}

		b[i].Quo(&b[i], pivot)
		for k := i; k < n; k++ {
			a[i][k].Quo(&a[i][k], pivot)
		}

		for r := 0; r < n; r++ {
			if r == i {
				continue
			}
			factor := new(big.Float).SetPrec(prec).Set(&a[r][i])
			if factor.Sign() == 0 {
				continue
			}
			for k := i; k < n; k++ {
				d := tmp.Mul(factor, &a[i][k])
				a[r][k].Sub(&a[r][k], d)
			}
			d := tmp.Mul(factor, &b[i])
			b[r].Sub(&b[r], d)
		}
	}

	return b, nil
}
