package crmath

import (
	"math"
	"math/bits"
)

// dyadic is the number (-1)**neg * mant * 2**exp. A nonzero dyadic is kept
// normalized with bit 127 of mant set, so every operation below carries 128
// significant bits and rounds to nearest on its first dropped bit, for a
// relative error under 2**-128 per operation.
type dyadic struct {
	neg  bool
	exp  int
	mant U128
}

func (a dyadic) isZero() bool { return a.mant.IsZero() }

func (a dyadic) negate() dyadic {
	if a.isZero() {
		return a
	}
	a.neg = !a.neg
	return a
}

// roundMant adds the rounding bit to a 128-bit significand, renormalizing
// if the increment carries out of bit 127.
func roundMant(m U128, exp int, round uint64) (U128, int) {
	if round == 0 {
		return m, exp
	}
	m, carry := m.Add(U128{lo: 1})
	if carry != 0 {
		return U128{hi: 1 << 63}, exp + 1
	}
	return m, exp
}

func (a dyadic) mul(b dyadic) dyadic {
	if a.isZero() || b.isZero() {
		return dyadic{}
	}
	hi, hm, lm, _ := mul128to256(a.mant, b.mant)

	out := dyadic{neg: a.neg != b.neg}
	var round uint64
	if hi>>63 != 0 {
		out.mant = U128{hi, hm}
		out.exp = a.exp + b.exp + 128
		round = lm >> 63
	} else {
		out.mant = U128{hi<<1 | hm>>63, hm<<1 | lm>>63}
		out.exp = a.exp + b.exp + 127
		round = (lm >> 62) & 1
	}
	out.mant, out.exp = roundMant(out.mant, out.exp, round)
	return out
}

// cmpAbs compares |a| and |b| for normalized, nonzero operands.
func (a dyadic) cmpAbs(b dyadic) int {
	if a.exp != b.exp {
		if a.exp > b.exp {
			return 1
		}
		return -1
	}
	return a.mant.Cmp(b.mant)
}

// add returns a + b. The smaller operand is aligned into a 192-bit window
// below the larger one, so bits shifted out of the window sit at least 64
// places under the result's rounding bit.
func (a dyadic) add(b dyadic) dyadic {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	if a.cmpAbs(b) < 0 {
		a, b = b, a
	}
	d := uint(a.exp - b.exp)
	if d >= 192 {
		return a
	}

	a2, a1, a0 := a.mant.hi, a.mant.lo, uint64(0)
	b2, b1, b0 := shr192(b.mant.hi, b.mant.lo, 0, d)

	var c uint64
	if a.neg == b.neg {
		a0, c = bits.Add64(a0, b0, 0)
		a1, c = bits.Add64(a1, b1, c)
		a2, c = bits.Add64(a2, b2, c)
		if c != 0 {
			m := U128{1<<63 | a2>>1, a2<<63 | a1>>1}
			m, exp := roundMant(m, a.exp+1, a1&1)
			return dyadic{neg: a.neg, exp: exp, mant: m}
		}
	} else {
		a0, c = bits.Sub64(a0, b0, 0)
		a1, c = bits.Sub64(a1, b1, c)
		a2, _ = bits.Sub64(a2, b2, c)
	}

	var lz uint
	switch top := (U128{a2, a1}); {
	case !top.IsZero():
		lz = top.LeadingZeros()
	case a0 != 0:
		lz = 128 + uint(bits.LeadingZeros64(a0))
	default:
		return dyadic{}
	}
	a2, a1, a0 = shl192(a2, a1, a0, lz)
	m, exp := roundMant(U128{a2, a1}, a.exp-int(lz), a0>>63)
	return dyadic{neg: a.neg, exp: exp, mant: m}
}

func shr192(x2, x1, x0 uint64, n uint) (uint64, uint64, uint64) {
	for n >= 64 {
		x2, x1, x0 = 0, x2, x1
		n -= 64
	}
	if n == 0 {
		return x2, x1, x0
	}
	return x2 >> n, x1>>n | x2<<(64-n), x0>>n | x1<<(64-n)
}

func shl192(x2, x1, x0 uint64, n uint) (uint64, uint64, uint64) {
	for n >= 64 {
		x2, x1, x0 = x1, x0, 0
		n -= 64
	}
	if n == 0 {
		return x2, x1, x0
	}
	return x2<<n | x1>>(64-n), x1<<n | x0>>(64-n), x0 << n
}

// dyadicFromFraction converts the 256-bit fixed-point magnitude w (binary
// point above w[0]) into a dyadic.
func dyadicFromFraction(neg bool, w [4]uint64) dyadic {
	w, lz := normalize256(w)
	if lz == 256 {
		return dyadic{}
	}
	m, exp := roundMant(U128{w[0], w[1]}, -128-int(lz), w[2]>>63)
	return dyadic{neg: neg, exp: exp, mant: m}
}

// normalize256 shifts w left until its top bit is set and returns the shift.
// A zero w returns a shift of 256.
func normalize256(w [4]uint64) ([4]uint64, uint) {
	var lz uint
	for i := 0; i < 4; i++ {
		if w[i] != 0 {
			lz += uint(bits.LeadingZeros64(w[i]))
			return shl256(w, lz), lz
		}
		lz += 64
	}
	return w, lz
}

func shl256(w [4]uint64, n uint) [4]uint64 {
	for n >= 64 {
		w = [4]uint64{w[1], w[2], w[3], 0}
		n -= 64
	}
	if n == 0 {
		return w
	}
	return [4]uint64{
		w[0]<<n | w[1]>>(64-n),
		w[1]<<n | w[2]>>(64-n),
		w[2]<<n | w[3]>>(64-n),
		w[3] << n,
	}
}

// Rounding a 128-bit significand to float64 keeps its top 53 bits; the
// remaining 75 are compared against the halfway point.
const dyadicDropBits = 128 - 53

// roundFloat64 rounds a to the nearest float64, ties to even. ok is false
// if moving a by errUnits units in the last place of its 128-bit significand
// could cross a rounding boundary. a must lie in the normal float64 range.
func (a dyadic) roundFloat64(errUnits uint64) (v float64, ok bool) {
	if a.isZero() {
		return 0, true
	}
	top := a.mant.Rsh(dyadicDropBits)
	rest := a.mant.Sub(top.Lsh(dyadicDropBits))
	half := U128From64(1).Lsh(dyadicDropBits - 1)

	var dist U128
	cmp := rest.Cmp(half)
	if cmp >= 0 {
		dist = rest.Sub(half)
	} else {
		dist = half.Sub(rest)
	}
	ok = dist.Cmp(U128From64(errUnits)) > 0

	m := top.lo
	if cmp > 0 || (cmp == 0 && top.Bit(0) == 1) {
		m++
	}
	v = math.Ldexp(float64(m), a.exp+dyadicDropBits)
	if a.neg {
		v = -v
	}
	return v, ok
}
