package crmath

import (
	"math"
	"testing"
)

var (
	BenchFloatResult float64
	BenchDDResult    DD
	BenchUintResult  uint

	BenchSmall = 0.7
	BenchMid   = 1234.5678
	BenchHuge  = 1e300
)

func BenchmarkSin(b *testing.B) {
	for _, bc := range []struct {
		name string
		x    float64
	}{
		{"small", BenchSmall},
		{"mid", BenchMid},
		{"huge", BenchHuge},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchFloatResult = Sin(bc.x)
			}
		})
	}
}

func BenchmarkStdlibSin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = math.Sin(BenchMid)
	}
}

func BenchmarkCos(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchFloatResult = Cos(BenchMid)
	}
}

func BenchmarkReduceHuge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r := Reduce(BenchHuge)
		BenchDDResult, BenchUintResult = r.R, r.Quadrant
	}
}

func BenchmarkAccuratePass(b *testing.B) {
	f := decompose(BenchMid)
	for i := 0; i < b.N; i++ {
		BenchFloatResult, _ = evalAccurate(f, 0)
	}
}

func BenchmarkTwoProd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = TwoProd(BenchMid, BenchSmall)
	}
}

func BenchmarkTwoProdDekker(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchDDResult = twoProdDekker(BenchMid, BenchSmall)
	}
}
