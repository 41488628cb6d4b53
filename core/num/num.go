// core/num/num.go
// Undefined-aware arithmetic. The undefined marker is NaN; every helper here
// returns NaN when any operand is NaN or ±Inf, or when the result overflows,
// so callers never need their own finiteness guards.
package num

import "math"

// Undefined returns the undefined marker.
func Undefined() float64 { return math.NaN() }

// Defined reports whether x is a finite real number.
func Defined(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// AllDefined reports whether every value is finite.
func AllDefined(xs ...float64) bool {
	for _, x := range xs {
		if !Defined(x) {
			return false
		}
	}
	return true
}

// Mul returns the product of xs, or NaN if any factor is undefined or the
// product overflows.
func Mul(xs ...float64) float64 {
	p := 1.0
	for _, x := range xs {
		if !Defined(x) {
			return math.NaN()
		}
		p *= x
	}
	return finite(p)
}

// Add returns a+b, or NaN if either is undefined.
func Add(a, b float64) float64 {
	if !Defined(a) || !Defined(b) {
		return math.NaN()
	}
	return finite(a + b)
}

// Sub returns a-b, or NaN if either is undefined.
func Sub(a, b float64) float64 {
	if !Defined(a) || !Defined(b) {
		return math.NaN()
	}
	return finite(a - b)
}

// Pow returns base^exp, or NaN if either is undefined or the result is not
// finite.
func Pow(base, exp float64) float64 {
	if !Defined(base) || !Defined(exp) {
		return math.NaN()
	}
	return finite(math.Pow(base, exp))
}

// DivPositive returns a/b when both are defined and b > 0; otherwise NaN.
func DivPositive(a, b float64) float64 {
	if !Defined(a) || !Defined(b) || b <= 0 {
		return math.NaN()
	}
	return finite(a / b)
}

// finite maps an overflowed result to the undefined marker.
func finite(x float64) float64 {
	if !Defined(x) {
		return math.NaN()
	}
	return x
}
