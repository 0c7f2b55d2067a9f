/*
Package crmath provides correctly rounded float64 sine and cosine.

Sin and Cos return the float64 nearest to the true mathematical result
(round-to-nearest, ties-to-even) for every float64 argument, including
arguments near the largest finite magnitude:

	fmt.Println(crmath.Sin(1))
	// Output: 0.8414709848078965

Results are produced in two passes. The fast pass reduces the argument with
double-double (DD) arithmetic and evaluates the polynomials in double-double;
if its error interval straddles a rounding boundary, the accurate pass
reduces the argument exactly against a multiword table of 2/π and evaluates
in 128-bit dyadic arithmetic built on U128.

Special cases follow IEEE 754:

	Sin(±0)   = ±0
	Sin(±Inf) = NaN (Invalid)
	Sin(NaN)  = NaN
	Cos(±0)   = 1
	Cos(±Inf) = NaN (Invalid)
	Cos(NaN)  = NaN

Go has no floating-point environment, so the Invalid and Inexact conditions
are reported explicitly by SinStatus and CosStatus.

The building blocks are exported for reuse by sibling functions:

	Classify(x float64) Class
	Reduce(x float64) ReducedArgument
	TwoSum(a, b float64) DD
	TwoProd(a, b float64) DD

Sincos returns both results for one argument.

All functions are pure, allocation-free and safe for concurrent use. The
constant tables in tables.go are read-only and generated by misc/gentables.

A *Lib built with New applies a Config resolved once at construction time;
see Config for the available math optimizations. The package-level functions
use Default. Lib.SincosTo writes through pointers checked by the Lib's
nullcheck.Guard.
*/
package crmath
