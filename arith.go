package crmath

import (
	"math/bits"
)

// mul128to256 returns the full 256-bit product of u and v as four words,
// most significant first.
func mul128to256(u, v U128) (hi, hm, lm, lo uint64) {
	var c uint64

	hi, hm = bits.Mul64(u.hi, v.hi)
	lm, lo = bits.Mul64(u.lo, v.lo)

	thi, tlo := bits.Mul64(u.hi, v.lo)
	lm, c = bits.Add64(lm, tlo, 0)
	hm, c = bits.Add64(hm, thi, c)
	hi += c

	thi, tlo = bits.Mul64(u.lo, v.hi)
	lm, c = bits.Add64(lm, tlo, 0)
	hm, c = bits.Add64(hm, thi, c)
	hi += c

	return hi, hm, lm, lo
}

// mul64by256 returns the product of m and the 256-bit integer (z0, z1, z2,
// z3), most significant word first, reduced modulo 2**256. The word that
// would sit above p0 only ever carries multiples of 4 in the reducer and is
// never formed.
func mul64by256(m uint64, z0, z1, z2, z3 uint64) (p0, p1, p2, p3 uint64) {
	var c uint64

	h3, l3 := bits.Mul64(z3, m)
	h2, l2 := bits.Mul64(z2, m)
	h1, l1 := bits.Mul64(z1, m)
	l0 := z0 * m

	p3 = l3
	p2, c = bits.Add64(l2, h3, 0)
	p1, c = bits.Add64(l1, h2, c)
	p0, _ = bits.Add64(l0, h1, c)
	return p0, p1, p2, p3
}
