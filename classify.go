package crmath

// Class is the IEEE 754 classification of a float64.
type Class uint8

const (
	ClassNaN Class = iota
	ClassInf
	ClassZero
	ClassSubnormal
	ClassNormal
)

func (c Class) String() string {
	switch c {
	case ClassNaN:
		return "nan"
	case ClassInf:
		return "inf"
	case ClassZero:
		return "zero"
	case ClassSubnormal:
		return "subnormal"
	case ClassNormal:
		return "normal"
	default:
		return "invalid"
	}
}

// Classify decodes the exponent and fraction fields of x. Every float64 bit
// pattern maps to exactly one Class.
func Classify(x float64) Class {
	return decompose(x).class()
}

func (f floatBits) class() Class {
	switch {
	case f.exp == mask && f.frac != 0:
		return ClassNaN
	case f.exp == mask:
		return ClassInf
	case f.exp == 0 && f.frac == 0:
		return ClassZero
	case f.exp == 0:
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// stage is the pipeline entry decision for one argument. stageTiny covers
// subnormals and normals small enough that the function is its own
// correctly rounded value (x for sine, 1 for cosine).
type stage uint8

const (
	stageNaN stage = iota
	stageInf
	stageZero
	stageTiny
	stageReduce
)

// Largest biased exponents of the tiny stage. For |x| < 2**-26,
// x**3/6 < ulp(x)/2 so sin(x) rounds to x; for |x| < 2**-27, x**2/2 is below
// half an ulp of 1 so cos(x) rounds to 1.
const (
	sinTinyExp = bias - 27
	cosTinyExp = bias - 28
)

func (f floatBits) stage(tinyExp int) stage {
	switch f.class() {
	case ClassNaN:
		return stageNaN
	case ClassInf:
		return stageInf
	case ClassZero:
		return stageZero
	case ClassSubnormal:
		return stageTiny
	}
	if f.exp <= tinyExp {
		return stageTiny
	}
	return stageReduce
}
