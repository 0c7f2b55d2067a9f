package crmath

import (
	"math"
)

// Sin returns the sine of the radian argument x, correctly rounded to
// nearest, ties to even.
//
// Special cases are:
//
//	Sin(±0) = ±0
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	y, _ := defaultLib.eval(x, false)
	return y
}

// Cos returns the cosine of the radian argument x, correctly rounded to
// nearest, ties to even.
//
// Special cases are:
//
//	Cos(±0) = 1
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	y, _ := defaultLib.eval(x, true)
	return y
}

// SinStatus is Sin, also returning the exceptions the call raises.
func SinStatus(x float64) (float64, Exception) {
	return defaultLib.eval(x, false)
}

// CosStatus is Cos, also returning the exceptions the call raises.
func CosStatus(x float64) (float64, Exception) {
	return defaultLib.eval(x, true)
}

const quietBit = 1 << (shift - 1)

// fastRound rounds the fast-pass result. Tests replace it to force the
// accurate pass.
var fastRound = roundFast

func (l *Lib) eval(x float64, cos bool) (y float64, exc Exception) {
	tinyExp := sinTinyExp
	if cos {
		tinyExp = cosTinyExp
	}

	f := decompose(x)
	switch f.stage(tinyExp) {
	case stageNaN:
		return math.Float64frombits(math.Float64bits(x) | quietBit), 0
	case stageInf:
		return math.NaN(), l.raise(Invalid)
	case stageZero:
		if cos {
			return 1, 0
		}
		return x, 0
	case stageTiny:
		if cos {
			return 1, l.raise(Inexact)
		}
		return x, l.raise(Inexact)
	}

	var q0 uint
	if cos {
		q0 = 1
	}
	q, r := reduceFast(f, abs(x))
	y, ok := fastRound(evalQuadrant(q+q0, r))
	if !ok && !l.skipAccurate {
		// A failed rounding test in the accurate pass leaves its result as
		// the best available; no argument is known to reach that branch.
		y, _ = evalAccurate(f, q0)
	}

	// sin is odd and cos even; both passes work on |x|.
	if f.sign && !cos {
		y = -y
	}
	return y, l.raise(Inexact)
}

func (l *Lib) raise(e Exception) Exception {
	if l.noExcept {
		return 0
	}
	return e
}

// Sincos returns Sin(x) and Cos(x).
func Sincos(x float64) (sin, cos float64) {
	return defaultLib.Sincos(x)
}
