package crmath

import (
	"math"
	"math/bits"
)

// ReducedArgument is x = Quadrant*(π/2) + R + 2πn for some integer n, with
// |R| <= π/4 plus a small slack from rounding the quotient.
type ReducedArgument struct {
	Quadrant uint
	R        DD
}

const (
	// Arguments with a biased exponent below this have |x| < 2**20, so the
	// quotient fits in 20 bits and q*pio2C1 is exact.
	moderateExpLimit = bias + 20

	// Moderate-regime remainders below this have lost too many bits to
	// cancellation and are reduced again with the Payne-Hanek reducer.
	cancelLimit = 0x1p-20
)

// Reduce maps a finite x to its quadrant and remainder. The remainder is
// accurate to about 2**-95 relative. For NaN and infinite x, R is NaN.
func Reduce(x float64) ReducedArgument {
	f := decompose(x)
	switch f.class() {
	case ClassNaN, ClassInf:
		return ReducedArgument{R: DD{math.NaN(), math.NaN()}}
	case ClassZero:
		return ReducedArgument{R: DD{Hi: x}}
	}
	q, r := reduceFast(f, abs(x))
	if f.sign {
		return ReducedArgument{Quadrant: -q & 3, R: r.Neg()}
	}
	return ReducedArgument{Quadrant: q, R: r}
}

// reduceFast reduces ax = |x| for the fast pass.
func reduceFast(f floatBits, ax float64) (q uint, r DD) {
	if f.exp < moderateExpLimit {
		if q, r, ok := reduceModerate(ax); ok {
			return q, r
		}
	}
	return reduceLarge(f)
}

// reduceModerate is a three-part Cody-Waite reduction of 0 <= x < 2**20.
// The quotient rounds to nearest, ties to even, matching payneHanek.
func reduceModerate(x float64) (q uint, r DD, ok bool) {
	k := math.RoundToEven(x * twoOverPi)

	// Exact: k*pio2C1 fits in 53 bits and lies within a factor of two of x.
	a := x - k*pio2C1

	p := TwoProd(k, pio2C2)
	s := TwoDiff(a, p.Hi)
	lo := s.Lo - p.Lo - k*pio2C3
	r = TwoSum(s.Hi, lo)

	if k != 0 && abs(r.Hi) < cancelLimit {
		return 0, DD{}, false
	}
	return uint(k) & 3, r, true
}

// payneHanek computes x*(2/π) = 4n + q + f exactly enough for any finite,
// normal x with |x| >= 2**-74, where q is the nearest quadrant and |f| <=
// 1/2. It returns q mod 4, the sign of f and |f| as a 256-bit fixed-point
// fraction with the binary point above frac[0].
//
// x = m * 2**e. Only the table bits of weight 2**-(e-1) and below can
// contribute to x*(2/π) mod 4; the window of 256 bits starting there is
// chosen so that the top two bits of the truncated product are q.
func payneHanek(f floatBits) (q uint, negFrac bool, frac [4]uint64) {
	m, e := f.mantExp()

	start := uint(e + 126)
	digit, bitshift := start/64, start%64
	w := twoOverPiWords[digit : digit+5]
	z0 := w[0]<<bitshift | w[1]>>(64-bitshift)
	z1 := w[1]<<bitshift | w[2]>>(64-bitshift)
	z2 := w[2]<<bitshift | w[3]>>(64-bitshift)
	z3 := w[3]<<bitshift | w[4]>>(64-bitshift)

	p0, p1, p2, p3 := mul64by256(m, z0, z1, z2, z3)

	q = uint(p0 >> 62)
	frac = [4]uint64{
		p0<<2 | p1>>62,
		p1<<2 | p2>>62,
		p2<<2 | p3>>62,
		p3 << 2,
	}

	// Round the quotient to nearest, ties to even. 2/π is irrational, so a
	// nonzero mantissa never lands exactly on a half; the tie case only keeps
	// the rule identical to reduceModerate's.
	if frac[0]>>63 != 0 {
		half := frac == [4]uint64{1 << 63}
		if !half || q&1 == 1 {
			q++
			frac = negate256(frac)
			negFrac = true
		}
	}
	return q & 3, negFrac, frac
}

func negate256(w [4]uint64) [4]uint64 {
	var c uint64 = 1
	for i := 3; i >= 0; i-- {
		w[i], c = bits.Add64(^w[i], 0, c)
	}
	return w
}

// reduceLarge runs payneHanek and converts the fraction to a double-double
// remainder in radians.
func reduceLarge(f floatBits) (q uint, r DD) {
	q, negFrac, frac := payneHanek(f)

	frac, lz := normalize256(frac)
	if lz == 256 {
		return q, DD{}
	}

	// Top 53 bits exactly, then the next 64 rounded to 53.
	hi := math.Ldexp(float64(frac[0]>>11), -53-int(lz))
	lo := math.Ldexp(float64(frac[0]<<53|frac[1]>>11), -117-int(lz))
	r = FastTwoSum(hi, lo).Mul(DD{pio2Hi, pio2Lo})
	if negFrac {
		r = r.Neg()
	}
	return q, r
}
