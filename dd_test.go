package crmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func randSigned(rng *rand.Rand, minExp, maxExp int) float64 {
	x := randFloat(rng, minExp, maxExp)
	if rng.Intn(2) == 1 {
		x = -x
	}
	return x
}

func TestTwoSumExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		a := randSigned(globalRNG, bias-200, bias+200)
		b := randSigned(globalRNG, bias-200, bias+200)

		want := exactBig(a, b)
		for _, s := range []DD{TwoSum(a, b), TwoSum(b, a), TwoDiff(a, -b)} {
			tt.MustExact(0, ddBig(s).Cmp(want), "%x + %x", a, b)
			tt.MustExact(a+b, s.Hi)
		}
		if math.Abs(a) >= math.Abs(b) {
			tt.MustExact(0, ddBig(FastTwoSum(a, b)).Cmp(want), "%x + %x", a, b)
		}
	}
}

func TestTwoDiffExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		a := randSigned(globalRNG, bias-200, bias+200)
		b := randSigned(globalRNG, bias-200, bias+200)
		s := TwoDiff(a, b)
		tt.MustExact(0, ddBig(s).Cmp(exactBig(a, -b)), "%x - %x", a, b)
		tt.MustExact(a-b, s.Hi)
	}
}

func TestTwoProdExact(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 20000; i++ {
		a := randSigned(globalRNG, bias-200, bias+200)
		b := randSigned(globalRNG, bias-200, bias+200)

		want := exactBig()
		want.Mul(exactBig(a), exactBig(b))

		for _, p := range []DD{twoProdDekker(a, b), twoProdFMA(a, b), TwoProd(a, b)} {
			tt.MustExact(0, ddBig(p).Cmp(want), "%x * %x", a, b)
			tt.MustExact(a*b, p.Hi)
		}
	}
}

func TestDDArith(t *testing.T) {
	tt := assert.WrapTB(t)

	const limit = 0x1p-100
	for i := 0; i < 20000; i++ {
		a := FastTwoSum(randSigned(globalRNG, bias-10, bias+10), randSigned(globalRNG, bias-70, bias-64))
		b := FastTwoSum(randSigned(globalRNG, bias-10, bias+10), randSigned(globalRNG, bias-70, bias-64))
		ab, bb := ddBig(a), ddBig(b)

		want := exactBig()
		want.Mul(ab, bb)
		got := a.Mul(b)
		tt.MustAssert(relErr(ddBig(got), want) < limit, "mul %v %v", a, b)
		tt.MustAssert(math.Abs(got.Lo) <= math.Abs(got.Hi)*0x1p-52, "not normalized: %v", got)

		want = exactBig()
		want.Mul(ab, exactBig(b.Hi))
		tt.MustAssert(relErr(ddBig(a.MulFloat(b.Hi)), want) < limit, "mulfloat %v %v", a, b.Hi)

		// Same signs only: opposite signs may cancel beyond any relative bound.
		if (a.Hi < 0) == (b.Hi < 0) {
			want = exactBig(a.Hi, a.Lo, b.Hi, b.Lo)
			tt.MustAssert(relErr(ddBig(a.Add(b)), want) < limit, "add %v %v", a, b)
			want = exactBig(a.Hi, a.Lo, b.Hi)
			tt.MustAssert(relErr(ddBig(a.AddFloat(b.Hi)), want) < limit, "addfloat %v %v", a, b.Hi)
		} else {
			want = exactBig(a.Hi, a.Lo, -b.Hi, -b.Lo)
			tt.MustAssert(relErr(ddBig(a.Sub(b)), want) < limit, "sub %v %v", a, b)
		}
	}
}

func TestDDHelpers(t *testing.T) {
	tt := assert.WrapTB(t)

	d := DD{Hi: 3}
	tt.MustExact(DD{-3, 0}, d.Neg())
	tt.MustExact(3.0, d.Float64())

	v := TwoSum(1, 0x1p-60)
	tt.MustExact(1.0, v.Float64())
	tt.MustExact(DD{1, 0x1p-60}, v)
}
