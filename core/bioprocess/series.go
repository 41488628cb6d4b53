// core/bioprocess/series.go
package bioprocess

import (
	"math"

	"vvforecast-core/num"
)

// InfectedDailySurvival is the fraction of infected cells remaining after
// each further day (7 % daily attrition).
const InfectedDailySurvival = 0.93

// MaxPoints bounds the length of a generated series.
const MaxPoints = 100_000

// Window controls series sampling.
type Window struct {
	InfectionHour float64 // phase split; infection happens here
	EndHour       float64 // last sampled hour (inclusive)
	StepHours     float64 // sampling interval
}

// DefaultWindow samples Day 0..7 every 6 h with infection on Day 5.
func DefaultWindow() Window {
	return Window{InfectionHour: InfectionHour, EndHour: FinalHour, StepHours: 6}
}

// Point is one sample of the cell-density series.
type Point struct {
	Hour       float64
	Day        float64
	Uninfected float64 // cells/mL that never received an infectious event
	Infected   float64 // cells/mL infected at the split (0 before it)
	Total      float64
}

// Hours returns the sampled hours 0, step, 2·step, … ≤ EndHour.
// An unusable window (non-finite values, step ≤ 0, EndHour < 0, or more
// than MaxPoints samples) yields nil.
func (w Window) Hours() []float64 {
	n, ok := w.count()
	if !ok {
		return nil
	}
	hs := make([]float64, n)
	for i := range hs {
		hs[i] = float64(i) * w.StepHours
	}
	return hs
}

func (w Window) count() (int, bool) {
	if !num.AllDefined(w.EndHour, w.StepHours) || w.StepHours <= 0 || w.EndHour < 0 {
		return 0, false
	}
	// Tolerate representation error so 1.0/0.1 still reaches the end hour.
	f := math.Floor(w.EndHour/w.StepHours+1e-9) + 1
	if f > MaxPoints {
		return 0, false
	}
	return int(f), true
}

// Series samples uninfected/infected/total density across the window.
//
// Before the split every cell is uninfected and grows exponentially. After it,
// the escaped fraction keeps doubling while the infected fraction decays by
// InfectedDailySurvival per day.
func Series(in Inputs, w Window) []Point {
	hours := w.Hours()
	if hours == nil {
		return nil
	}

	split := w.InfectionHour
	infFrac := InfectedFraction(in.Lambda)
	uninfFrac := num.Sub(1, infFrac)
	popAtSplit := Grow(in.SeedDensity, split, in.DoublingTimeHours)

	atSplitUninfected := num.Mul(popAtSplit, uninfFrac)
	atSplitInfected := num.Mul(popAtSplit, infFrac)

	out := make([]Point, 0, len(hours))
	for _, h := range hours {
		var uninf, inf float64
		// A NaN split compares false here, so every sample lands in the
		// post-infection branch and inherits the undefined split population.
		if h <= split {
			uninf = Grow(in.SeedDensity, h, in.DoublingTimeHours)
			inf = 0
		} else {
			since := num.Sub(h, split)
			uninf = Grow(atSplitUninfected, since, in.DoublingTimeHours)
			inf = num.Mul(atSplitInfected, num.Pow(InfectedDailySurvival, since/24))
		}
		out = append(out, Point{
			Hour:       h,
			Day:        h / 24,
			Uninfected: uninf,
			Infected:   inf,
			Total:      num.Add(uninf, inf),
		})
	}
	return out
}

// Evaluate returns the scalar outputs and the series for w.
func Evaluate(in Inputs, w Window) (Outputs, []Point) {
	return Summarize(in), Series(in, w)
}
