package crmath

import (
	"math"
	"testing"

	"github.com/shabbyrobe/go-crmath/internal/oracle"
	"github.com/shabbyrobe/golib/assert"
)

// The fast pass almost never defers, so the accurate pass is checked
// directly against the oracle.
func TestAccuratePass(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < oracleSamples; i++ {
		x := randFloat(globalRNG, bias-26, mask-1)
		f := decompose(x)

		s, ok := evalAccurate(f, 0)
		tt.MustAssert(ok, "sin(%x): rounding test failed", x)
		tt.MustAssert(oracle.ULPError(s, oracle.Sin(x)) <= 0.5, "sin(%x) = %x", x, s)

		c, ok := evalAccurate(f, 1)
		tt.MustAssert(ok, "cos(%x): rounding test failed", x)
		tt.MustAssert(oracle.ULPError(c, oracle.Cos(x)) <= 0.5, "cos(%x) = %x", x, c)
	}
}

func TestAccuratePassKahan(t *testing.T) {
	tt := assert.WrapTB(t)

	s, ok := evalAccurate(decompose(kahanX), 0)
	tt.MustAssert(ok)
	tt.MustAssert(oracle.ULPError(s, oracle.Sin(kahanX)) <= 0.5, "%x", s)
}

func TestFastPassAgrees(t *testing.T) {
	tt := assert.WrapTB(t)

	var deferred int
	for i := 0; i < 20000; i++ {
		x := randFloat(globalRNG, bias-26, mask-1)
		f := decompose(x)
		q, r := reduceFast(f, x)
		for q0 := uint(0); q0 < 2; q0++ {
			y, ok := roundFast(evalQuadrant(q+q0, r))
			if !ok {
				deferred++
				continue
			}
			acc, _ := evalAccurate(f, q0)
			tt.MustExact(acc, y, "x=%x q0=%d", x, q0)
		}
	}
	// Failures of the rounding test happen about once per 2**30 calls.
	tt.MustAssert(deferred < 10, "deferred %d", deferred)
}

func TestRoundFast(t *testing.T) {
	tt := assert.WrapTB(t)

	y, ok := roundFast(DD{1, 0x1p-70})
	tt.MustAssert(ok)
	tt.MustExact(1.0, y)

	// Exactly halfway between 1 and 1+2**-52: undecidable.
	_, ok = roundFast(DD{1, 0x1p-53})
	tt.MustAssert(!ok)

	// Just above the halfway point but inside the error bound.
	_, ok = roundFast(DD{1, 0x1p-53 + 0x1p-100})
	tt.MustAssert(!ok)

	y, ok = roundFast(DD{-0.5, -0x1p-60})
	tt.MustAssert(ok)
	tt.MustExact(-0.5, y)
}

// withDeferredFastPass makes every fast-pass result fail its rounding test
// and moves it one ulp up, so a result that escapes the accurate pass is
// recognisable.
func withDeferredFastPass(t *testing.T) {
	t.Helper()
	fastRound = func(v DD) (float64, bool) {
		y, _ := roundFast(v)
		return math.Nextafter(y, math.Inf(1)), false
	}
	t.Cleanup(func() { fastRound = roundFast })
}

func TestAccuratePassFallback(t *testing.T) {
	tt := assert.WrapTB(t)
	withDeferredFastPass(t)

	fast, err := New(Config{Math: MathOpts{Optimizations: []MathOptimization{Fast}}})
	tt.MustOK(err)
	skip, err := New(Config{Math: MathOpts{Optimizations: []MathOptimization{SkipAccuratePass}}})
	tt.MustOK(err)

	for _, x := range []float64{0.5, 1, 2.5, 1e6, 1e22, kahanX} {
		f := decompose(x)
		wantSin, _ := evalAccurate(f, 0)
		wantCos, _ := evalAccurate(f, 1)

		tt.MustExact(wantSin, Sin(x), "sin(%x)", x)
		tt.MustExact(wantCos, Cos(x), "cos(%x)", x)
		tt.MustExact(-wantSin, Sin(-x), "sin(-%x)", x)
		tt.MustAssert(oracle.ULPError(Sin(x), oracle.Sin(x)) <= 0.5, "sin(%x)", x)

		q, r := reduceFast(f, x)
		fastSin, _ := roundFast(evalQuadrant(q, r))
		fastCos, _ := roundFast(evalQuadrant(q+1, r))
		fastSin = math.Nextafter(fastSin, math.Inf(1))
		fastCos = math.Nextafter(fastCos, math.Inf(1))

		for _, lib := range []*Lib{fast, skip} {
			tt.MustExact(fastSin, lib.Sin(x), "sin(%x)", x)
			tt.MustExact(fastCos, lib.Cos(x), "cos(%x)", x)
			tt.MustAssert(lib.Sin(x) != Sin(x), "sin(%x)", x)
		}
	}
}

func TestSkipAccuratePass(t *testing.T) {
	tt := assert.WrapTB(t)

	lib, err := New(Config{Math: MathOpts{Optimizations: []MathOptimization{Fast}}})
	tt.MustOK(err)
	for i := 0; i < 1000; i++ {
		x := randFloat(globalRNG, 0, mask-1)
		y := lib.Sin(x)
		tt.MustAssert(oracle.ULPError(y, oracle.Sin(x)) < 1, "sin(%x) = %x", x, y)
		tt.MustAssert(math.Abs(y) <= 1)
	}
}
