package crmath

// The polynomials are Taylor series in z = r*r. For |r| <= π/4 + 2**-20 the
// first omitted sine term is below 2**-100 relative in the double-double
// tables and below 2**-130 in the dyadic ones; cosine is one degree higher
// for the same bound. Both series are evaluated from r*r, so negating r
// negates sinPoly and leaves cosPoly unchanged bit for bit.

func hornerDD(c []DD, z DD) DD {
	s := c[len(c)-1]
	for k := len(c) - 2; k >= 0; k-- {
		s = s.Mul(z).Add(c[k])
	}
	return s
}

func sinPoly(r DD) DD {
	return hornerDD(sinCoeffsDD[:], r.Mul(r)).Mul(r)
}

func cosPoly(r DD) DD {
	return hornerDD(cosCoeffsDD[:], r.Mul(r))
}

// evalQuadrant returns sin(q*π/2 + r).
func evalQuadrant(q uint, r DD) DD {
	var v DD
	if q&1 == 0 {
		v = sinPoly(r)
	} else {
		v = cosPoly(r)
	}
	if q&2 != 0 {
		v = v.Neg()
	}
	return v
}

func hornerDyadic(c []dyadic, z dyadic) dyadic {
	s := c[len(c)-1]
	for k := len(c) - 2; k >= 0; k-- {
		s = s.mul(z).add(c[k])
	}
	return s
}

func sinPolyDyadic(r dyadic) dyadic {
	return hornerDyadic(sinCoeffsDyadic[:], r.mul(r)).mul(r)
}

func cosPolyDyadic(r dyadic) dyadic {
	return hornerDyadic(cosCoeffsDyadic[:], r.mul(r))
}

func evalQuadrantDyadic(q uint, r dyadic) dyadic {
	var v dyadic
	if q&1 == 0 {
		v = sinPolyDyadic(r)
	} else {
		v = cosPolyDyadic(r)
	}
	if q&2 != 0 {
		v = v.negate()
	}
	return v
}
