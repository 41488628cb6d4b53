// internal/format/format.go
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Undefined is shown in place of any NaN/Inf readout.
const Undefined = "—"

// SciThreshold is the magnitude from which yields switch to scientific notation.
const SciThreshold = 1e7

func defined(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Count renders a density rounded to an integer with thousands separators.
func Count(v float64) string {
	if !defined(v) {
		return Undefined
	}
	return humanize.Commaf(math.Round(v))
}

// Percent renders a fraction as a percentage with two decimals.
func Percent(p float64) string {
	if !defined(p) {
		return Undefined
	}
	return strconv.FormatFloat(p*100, 'f', 2, 64) + "%"
}

// Yield renders a concentration: scientific with three decimals from
// SciThreshold upward (e.g. 5.742e+9), otherwise like Count.
func Yield(v float64) string {
	if !defined(v) {
		return Undefined
	}
	if math.Abs(v) < SciThreshold {
		return Count(v)
	}
	s := strconv.FormatFloat(v, 'e', 3, 64)
	// Go pads the exponent to two digits; drop the padding.
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Fixed renders v with the given decimals, or Undefined.
func Fixed(v float64, decimals int) string {
	if !defined(v) {
		return Undefined
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// Float renders v in the shortest form that round-trips, or Undefined.
// Used for machine-readable text columns.
func Float(v float64) string {
	if !defined(v) {
		return Undefined
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Hours renders a duration in hours, e.g. "27.70 h".
func Hours(v float64) string {
	if !defined(v) {
		return Undefined
	}
	return fmt.Sprintf("%.2f h", v)
}
