// Package oracle evaluates sine and cosine of float64 arguments with
// math/big, far beyond float64 precision, for checking the library.
package oracle

import (
	"math"
	"math/big"
	"sync"
)

const (
	// ReducePrec covers the largest float64 (2**1024) plus the deepest
	// known cancellation against a multiple of π/2 (about 2**-62), with
	// several hundred bits to spare.
	ReducePrec = 1700

	// EvalPrec is the working precision after reduction.
	EvalPrec = 192
)

var (
	piOnce sync.Once
	piBig  *big.Float
)

func newF(prec uint) *big.Float { return new(big.Float).SetPrec(prec) }

// Pi returns π rounded to prec bits, from Machin's formula
// π = 16·atan(1/5) − 4·atan(1/239).
func Pi(prec uint) *big.Float {
	if prec <= ReducePrec {
		piOnce.Do(func() { piBig = machin(ReducePrec) })
		return newF(prec).Set(piBig)
	}
	return machin(prec)
}

func machin(prec uint) *big.Float {
	work := prec + 64
	a := atanInv(5, work)
	a.Mul(a, newF(work).SetInt64(16))
	b := atanInv(239, work)
	b.Mul(b, newF(work).SetInt64(4))
	return newF(prec).Sub(a, b)
}

// atanInv returns atan(1/n) = Σ (-1)**k / ((2k+1)·n**(2k+1)).
func atanInv(n int64, prec uint) *big.Float {
	nn := newF(prec).SetInt64(n * n)
	pow := newF(prec).Quo(newF(prec).SetInt64(1), newF(prec).SetInt64(n))
	sum := newF(prec).Set(pow)
	limit := -int(prec) - 8

	term := newF(prec)
	for k := int64(1); ; k++ {
		pow.Quo(pow, nn)
		if pow.MantExp(nil) < limit {
			break
		}
		term.Quo(pow, newF(prec).SetInt64(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}
	return sum
}

// Reduce returns q and r with |x| = q·(π/2) + r + 2πn, |r| <= π/4, q in
// 0..3. r has EvalPrec bits. x must be finite.
func Reduce(x float64) (q int, r *big.Float) {
	halfPi := Pi(ReducePrec)
	halfPi.SetMantExp(halfPi, -1)

	ax := newF(ReducePrec).SetFloat64(math.Abs(x))
	t := newF(ReducePrec).Quo(ax, halfPi)
	t.Add(t, big.NewFloat(0.5))
	k, _ := t.Int(nil)

	kf := newF(ReducePrec).SetInt(k)
	kf.Mul(kf, halfPi)
	rr := newF(ReducePrec).Sub(ax, kf)

	q = int(new(big.Int).And(k, big.NewInt(3)).Int64())
	return q, newF(EvalPrec).Set(rr)
}

// series sums x**start/start! − x**(start+2)/(start+2)! + ... until the
// terms fall below EvalPrec.
func series(x *big.Float, start int64) *big.Float {
	x2 := newF(EvalPrec).Mul(x, x)
	term := newF(EvalPrec).SetInt64(1)
	if start == 1 {
		term.Set(x)
	}
	sum := newF(EvalPrec).Set(term)
	if term.Sign() == 0 {
		return sum
	}
	limit := sum.MantExp(nil) - int(EvalPrec) - 8

	for n := start + 1; ; n += 2 {
		term.Mul(term, x2)
		term.Quo(term, newF(EvalPrec).SetInt64(n*(n+1)))
		term.Neg(term)
		if term.Sign() == 0 || term.MantExp(nil) < limit {
			break
		}
		sum.Add(sum, term)
	}
	return sum
}

func quadrant(q int, r *big.Float) *big.Float {
	var v *big.Float
	if q&1 == 0 {
		v = series(r, 1)
	} else {
		v = series(r, 0)
	}
	if q&2 != 0 {
		v.Neg(v)
	}
	return v
}

// Sin returns sin(x) to EvalPrec bits. x must be finite.
func Sin(x float64) *big.Float {
	q, r := Reduce(x)
	v := quadrant(q, r)
	if math.Signbit(x) {
		v.Neg(v)
	}
	return v
}

// Cos returns cos(x) to EvalPrec bits. x must be finite.
func Cos(x float64) *big.Float {
	q, r := Reduce(x)
	return quadrant(q+1, r)
}

// Float64 rounds v to the nearest float64, ties to even.
func Float64(v *big.Float) float64 {
	f, _ := v.Float64()
	return f
}

// ULPError returns |got − want| in units in the last place of want's
// float64 binade. A correctly rounded got is never more than 0.5 away.
func ULPError(got float64, want *big.Float) float64 {
	if want.Sign() == 0 {
		if got == 0 {
			return 0
		}
		return math.Inf(1)
	}
	ulpExp := want.MantExp(nil) - 1 - 52
	if ulpExp < -1074 {
		ulpExp = -1074
	}
	diff := newF(want.Prec()).SetFloat64(got)
	diff.Sub(diff, want)
	diff.Abs(diff)
	diff.SetMantExp(diff, -ulpExp)
	f, _ := diff.Float64()
	return f
}
