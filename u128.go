package crmath

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer value type. It is the significand of
// the dyadic numbers used by the accurate pass, and all operations return
// new values.
type U128 struct {
	hi, lo uint64
}

func U128From64(v uint64) U128 { return U128{lo: v} }

func (u U128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) AsBigInt() *big.Int {
	b := new(big.Int).SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.lo))
}

// Add returns u + n and the carry out of bit 127.
func (u U128) Add(n U128) (v U128, carry uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry
}

// Sub returns u - n, wrapping on underflow.
func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return U128{}
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n >= 128 {
		return U128{}
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// Bit returns the value of bit i (0 is the least significant).
func (u U128) Bit(i uint) uint64 {
	if i >= 64 {
		return (u.hi >> (i - 64)) & 1
	}
	return (u.lo >> i) & 1
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}
