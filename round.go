package crmath

const (
	// Relative error bound of the fast pass: reduction, polynomial and the
	// double-double rounding in between. Measured worst case is near 2**-104.
	fastRelErr = 0x1p-90

	// Error bound of the accurate pass in units of 2**-127 relative to its
	// result. Measured worst case is near one unit.
	accurateErrUnits = 1 << 6
)

// roundFast rounds v to float64 if every value within its error bound
// rounds to the same double. Otherwise ok is false and the accurate pass
// must decide.
func roundFast(v DD) (y float64, ok bool) {
	e := fastRelErr * abs(v.Hi)
	y = v.Hi + (v.Lo + e)
	return y, y == v.Hi+(v.Lo-e)
}

// evalAccurate recomputes sin(x + q0*π/2) for |x| described by f with the
// Payne-Hanek reducer and 128-bit dyadic arithmetic. q0 is 0 for sine and
// 1 for cosine.
func evalAccurate(f floatBits, q0 uint) (y float64, ok bool) {
	q, negFrac, frac := payneHanek(f)
	r := dyadicFromFraction(negFrac, frac).mul(pio2Dyadic)
	return evalQuadrantDyadic(q+q0, r).roundFloat64(accurateErrUnits)
}
