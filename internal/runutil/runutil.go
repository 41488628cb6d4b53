// internal/runutil/runutil.go
package runutil

import (
	"math"
	"runtime"
)

// EffectiveThreads returns the worker count for parallel runs.
// threads <= 0 means one worker per CPU.
func EffectiveThreads(threads int) int {
	if threads > 0 {
		return threads
	}
	return runtime.NumCPU()
}

// FloatKey maps a float to a comparable key that is stable for NaN.
// NaN != NaN, so floats themselves cannot key a map reliably.
func FloatKey(v float64) uint64 {
	if math.IsNaN(v) {
		return 0x7FF8000000000001
	}
	return math.Float64bits(v)
}
