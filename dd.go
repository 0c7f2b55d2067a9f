package crmath

import (
	"math"
)

// DD is an unevaluated sum Hi + Lo of two float64s (a "double-double"),
// carrying roughly 106 bits of significand. A normalized DD satisfies
// |Lo| <= ulp(Hi)/2; every operation below returns a normalized DD.
type DD struct {
	Hi, Lo float64
}

// TwoSum returns s + e == a + b exactly, with s = fl(a + b).
func TwoSum(a, b float64) DD {
	s := a + b
	bb := s - a
	e := (a - (s - bb)) + (b - bb)
	return DD{s, e}
}

// FastTwoSum is TwoSum for |a| >= |b| (or a == 0).
func FastTwoSum(a, b float64) DD {
	s := a + b
	e := b - (s - a)
	return DD{s, e}
}

// TwoDiff returns s + e == a - b exactly.
func TwoDiff(a, b float64) DD {
	s := a - b
	bb := s - a
	e := (a - (s - bb)) - (b + bb)
	return DD{s, e}
}

// TwoProd returns p + e == a * b exactly, with p = fl(a * b), provided the
// product neither overflows nor underflows. It uses a fused multiply-add
// where the CPU has one and Dekker's splitting otherwise.
func TwoProd(a, b float64) DD {
	if hasFMA {
		return twoProdFMA(a, b)
	}
	return twoProdDekker(a, b)
}

func twoProdFMA(a, b float64) DD {
	p := a * b
	return DD{p, math.FMA(a, b, -p)}
}

// 2**27 + 1, which splits a float64 into two 26-bit halves.
const splitter = 134217729.0

func split(a float64) (hi, lo float64) {
	c := splitter * a
	hi = c - (c - a)
	return hi, a - hi
}

func twoProdDekker(a, b float64) DD {
	p := a * b
	ah, al := split(a)
	bh, bl := split(b)
	e := ((ah*bh - p) + ah*bl + al*bh) + al*bl
	return DD{p, e}
}

func (a DD) Neg() DD { return DD{-a.Hi, -a.Lo} }

// Float64 rounds the pair to the nearest float64.
func (a DD) Float64() float64 { return a.Hi + a.Lo }

// Add returns a + b with a relative error of a few units of 2**-106.
func (a DD) Add(b DD) DD {
	s := TwoSum(a.Hi, b.Hi)
	t := TwoSum(a.Lo, b.Lo)
	s.Lo += t.Hi
	s = FastTwoSum(s.Hi, s.Lo)
	s.Lo += t.Lo
	return FastTwoSum(s.Hi, s.Lo)
}

func (a DD) Sub(b DD) DD { return a.Add(b.Neg()) }

// AddFloat returns a + b.
func (a DD) AddFloat(b float64) DD {
	s := TwoSum(a.Hi, b)
	s.Lo += a.Lo
	return FastTwoSum(s.Hi, s.Lo)
}

// Mul returns a * b. The a.Lo*b.Lo term is below the precision of the
// result and is dropped.
func (a DD) Mul(b DD) DD {
	p := TwoProd(a.Hi, b.Hi)
	p.Lo += a.Hi*b.Lo + a.Lo*b.Hi
	return FastTwoSum(p.Hi, p.Lo)
}

// MulFloat returns a * b.
func (a DD) MulFloat(b float64) DD {
	p := TwoProd(a.Hi, b)
	p.Lo += a.Lo * b
	return FastTwoSum(p.Hi, p.Lo)
}
