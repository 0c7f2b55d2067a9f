package crmath

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/shabbyrobe/go-crmath/internal/oracle"
	"github.com/shabbyrobe/golib/assert"
)

// kahanX is the double closest to a multiple of π/2 among all finite
// doubles: its reduced argument is about 2**-60.9 times smaller than the
// argument's ulp would suggest.
const kahanX = 6381956970095103 * 0x1p797

// checkReduction asserts that got matches the oracle's reduction of x to
// within rel. A quadrant off by one is accepted only when the true
// remainder is within the quotient's rounding error of ±π/4.
func checkReduction(tt assert.T, x float64, got ReducedArgument, rel float64) {
	tt.Helper()

	q, want := oracle.Reduce(x)
	if math.Signbit(x) {
		q = -q & 3
		want.Neg(want)
	}
	r := ddBig(got.R)

	if d := (int(got.Quadrant) - q) & 3; d != 0 {
		halfPi := oracle.Pi(oracle.EvalPrec)
		halfPi.SetMantExp(halfPi, -1)
		switch d {
		case 1:
			r.Add(r, halfPi)
		case 3:
			r.Sub(r, halfPi)
		default:
			tt.Fatalf("%x: quadrant %d, want %d", x, got.Quadrant, q)
		}
		quarter := new(big.Float).SetMantExp(halfPi, -1)
		edge := new(big.Float).Abs(want)
		edge.Sub(edge, quarter)
		tt.MustAssert(edge.Abs(edge).Cmp(big.NewFloat(0x1p-28)) < 0,
			"%x: quadrant %d, want %d off the boundary", x, got.Quadrant, q)
	}
	tt.MustAssert(relErr(r, want) < rel, "%x: r=%v want %v", x, got.R, want)
}

func TestReduceSpecial(t *testing.T) {
	tt := assert.WrapTB(t)

	r := Reduce(math.Inf(1))
	tt.MustAssert(math.IsNaN(r.R.Hi))
	r = Reduce(math.NaN())
	tt.MustAssert(math.IsNaN(r.R.Hi))

	r = Reduce(math.Copysign(0, -1))
	tt.MustExact(uint(0), r.Quadrant)
	tt.MustAssert(r.R.Hi == 0 && math.Signbit(r.R.Hi))

	r = Reduce(math.SmallestNonzeroFloat64)
	tt.MustExact(uint(0), r.Quadrant)
	tt.MustExact(DD{math.SmallestNonzeroFloat64, 0}, r.R)
}

func TestReduceMultiples(t *testing.T) {
	for _, x := range []float64{
		math.Pi / 4 * 0.99,
		math.Pi / 2,
		math.Pi,
		3 * math.Pi / 2,
		2 * math.Pi,
		-math.Pi / 2,
		-math.Pi,
		1e6,
		0x1p20,
		kahanX,
		math.MaxFloat64,
	} {
		t.Run(fmt.Sprintf("%v", x), func(t *testing.T) {
			tt := assert.WrapTB(t)
			checkReduction(tt, x, Reduce(x), 0x1p-90)
		})
	}
}

func TestReducePi(t *testing.T) {
	tt := assert.WrapTB(t)

	// fl(π) is below π, so it lands just short of quadrant 2.
	r := Reduce(math.Pi)
	tt.MustExact(uint(2), r.Quadrant)
	tt.MustAssert(r.R.Hi < 0)
	tt.MustAssert(math.Abs(r.R.Hi+1.2246467991473532e-16) < 1e-31, "%v", r.R)
}

func TestReduceKahan(t *testing.T) {
	tt := assert.WrapTB(t)

	r := Reduce(kahanX)
	tt.MustAssert(math.Abs(r.R.Hi) < 0x1p-55 && r.R.Hi != 0, "%v", r.R)
	checkReduction(tt, kahanX, r, 0x1p-90)
	checkReduction(tt, -kahanX, Reduce(-kahanX), 0x1p-90)
}

func TestReduceOdd(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		x := randFloat(globalRNG, bias-30, mask-1)
		p, n := Reduce(x), Reduce(-x)
		tt.MustExact((4-p.Quadrant)&3, n.Quadrant, "%x", x)
		tt.MustExact(p.R.Neg(), n.R, "%x", x)
	}
}

func TestReduceOracle(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < oracleSamples; i++ {
		x := randFloat(globalRNG, bias-30, mask-1)
		checkReduction(tt, x, Reduce(x), 0x1p-90)
	}
}

func TestReduceNearMultiples(t *testing.T) {
	tt := assert.WrapTB(t)

	// The nearest doubles to k*π/2 exercise the cancellation fallback.
	for k := 1; k < 2000; k++ {
		x := float64(k) * (math.Pi / 2)
		for _, v := range []float64{x, math.Nextafter(x, 0), math.Nextafter(x, math.Inf(1))} {
			checkReduction(tt, v, Reduce(v), 0x1p-90)
		}
	}
}

func TestReduceRegimesAgree(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 10000; i++ {
		x := randFloat(globalRNG, bias-1, moderateExpLimit-1)
		qm, rm, ok := reduceModerate(x)
		if !ok {
			continue
		}
		ql, rl := reduceLarge(decompose(x))
		if qm != ql {
			// Only a remainder on the π/4 boundary may round either way.
			tt.MustAssert(math.Abs(math.Abs(rm.Hi)-math.Pi/4) < 0x1p-28, "%x: %d != %d", x, qm, ql)
			continue
		}
		tt.MustAssert(relErr(ddBig(rm), ddBig(rl)) < 0x1p-90, "%x: %v != %v", x, rm, rl)
	}
}

func TestReduceModerateCancellation(t *testing.T) {
	tt := assert.WrapTB(t)

	// 1.5707963267948966 is the double nearest π/2; its remainder is
	// about 6e-17, far below the cancellation limit.
	_, _, ok := reduceModerate(math.Pi / 2)
	tt.MustAssert(!ok)

	q, r, ok := reduceModerate(1)
	tt.MustAssert(ok)
	tt.MustExact(uint(1), q)
	tt.MustAssert(r.Hi < 0)
}

func TestNegate256(t *testing.T) {
	tt := assert.WrapTB(t)

	w := negate256([4]uint64{1 << 63})
	tt.MustExact([4]uint64{1 << 63}, w)
	tt.MustExact([4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}, negate256([4]uint64{0, 0, 0, 1}))
	tt.MustExact([4]uint64{}, negate256([4]uint64{}))
}
