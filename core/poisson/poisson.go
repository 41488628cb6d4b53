// core/poisson/poisson.go
// Poisson probability mass function, evaluated in the log domain:
//
//	ln P(X=k; λ) = k·ln λ − λ − ln Γ(k+1)
//
// so results stay finite well past k=170 where k! overflows a float64.
// Invalid arguments yield NaN (the undefined marker); Check reports why.
//
// This package has no app/output deps; bioprocess imports it cleanly.
package poisson

import (
	"fmt"
	"math"

	"vvforecast-core/num"
)

// ArgError describes a Poisson argument outside its domain.
type ArgError struct {
	Arg    string // "k" or "lambda"
	Value  float64
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("poisson: %s=%v %s", e.Arg, e.Value, e.Reason)
}

// Term is one entry of a distribution table.
type Term struct {
	K int
	P float64
}

// PMF returns P(X=k; lambda), or NaN when k < 0 or lambda is negative or
// not finite. For lambda == 0 the limit is used (0^0 = 1): P(0)=1, P(k>0)=0.
func PMF(k int, lambda float64) float64 {
	if k < 0 {
		return num.Undefined()
	}
	return pmf(float64(k), lambda)
}

// At is PMF for a real-valued x. Anything but a non-negative integer is undefined.
func At(x, lambda float64) float64 {
	if !num.Defined(x) || x < 0 || x != math.Trunc(x) {
		return num.Undefined()
	}
	return pmf(x, lambda)
}

func pmf(k, lambda float64) float64 {
	if !num.Defined(lambda) || lambda < 0 {
		return num.Undefined()
	}
	if lambda == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	lg, _ := math.Lgamma(k + 1)
	return math.Exp(k*math.Log(lambda) - lambda - lg)
}

// Check returns a non-nil *ArgError if PMF(k, lambda) would be undefined.
func Check(k int, lambda float64) error {
	if k < 0 {
		return &ArgError{Arg: "k", Value: float64(k), Reason: "must be a non-negative integer"}
	}
	return checkLambda(lambda)
}

// CheckAt is Check for a real-valued x.
func CheckAt(x, lambda float64) error {
	if !num.Defined(x) || x < 0 || x != math.Trunc(x) {
		return &ArgError{Arg: "k", Value: x, Reason: "must be a non-negative integer"}
	}
	return checkLambda(lambda)
}

func checkLambda(lambda float64) error {
	switch {
	case !num.Defined(lambda):
		return &ArgError{Arg: "lambda", Value: lambda, Reason: "must be finite"}
	case lambda < 0:
		return &ArgError{Arg: "lambda", Value: lambda, Reason: "must be ≥ 0"}
	}
	return nil
}

// CDF returns P(X ≤ k; lambda), NaN when undefined.
func CDF(k int, lambda float64) float64 {
	if Check(k, lambda) != nil {
		return num.Undefined()
	}
	s := 0.0
	for i := 0; i <= k; i++ {
		s += PMF(i, lambda)
	}
	return s
}

// Distribution returns P(k) for k = 0..kMax in ascending order.
// It returns nil when lambda is undefined or kMax < 0; every entry shares
// the definedness of lambda, so there are no partial tables.
func Distribution(lambda float64, kMax int) []Term {
	if kMax < 0 || checkLambda(lambda) != nil {
		return nil
	}
	out := make([]Term, 0, kMax+1)
	for k := 0; k <= kMax; k++ {
		out = append(out, Term{K: k, P: PMF(k, lambda)})
	}
	return out
}

// Split returns the share of cells that escaped infection (k = 0) and the
// share that received at least one infectious event (k ≥ 1).
func Split(lambda float64) (escaped, infected float64) {
	p0 := PMF(0, lambda)
	return p0, num.Sub(1, p0)
}
