package crmath

import (
	"math"
)

// IEEE 754 binary64 layout.
const (
	mask     = 0x7FF
	shift    = 64 - 11 - 1
	bias     = 1023
	fracMask = 1<<shift - 1
	signMask = 1 << 63
)

// floatBits is a float64 split into its raw fields. exp is the biased
// exponent as stored; frac excludes the implicit leading bit.
type floatBits struct {
	sign bool
	exp  int
	frac uint64
}

func decompose(x float64) floatBits {
	b := math.Float64bits(x)
	return floatBits{
		sign: b&signMask != 0,
		exp:  int((b >> shift) & mask),
		frac: b & fracMask,
	}
}

// mantExp returns the integer significand and exponent of a normal, finite
// x such that |x| = m * 2**e, with m in [2**52, 2**53).
func (f floatBits) mantExp() (m uint64, e int) {
	return f.frac | 1<<shift, f.exp - bias - shift
}

func abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ signMask)
}
