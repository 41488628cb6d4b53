// internal/params/ranges.go
package params

import (
	"fmt"
	"math"

	"vvforecast-core/bioprocess"
)

// Range describes one adjustable input the way the slider panel shows it.
type Range struct {
	Label string  `yaml:"label"`
	Unit  string  `yaml:"unit"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step"`
}

// Ranges holds the range for each model input.
type Ranges struct {
	Lambda       Range `yaml:"lambda"`
	DoublingTime Range `yaml:"doubling_time"`
	SeedDensity  Range `yaml:"seed_density"`
	BurstSize    Range `yaml:"burst_size"`
}

// Adjustment records a value that was moved into range or rejected.
type Adjustment struct {
	Field string
	From  float64
	To    float64
}

func (a Adjustment) String() string {
	if math.IsNaN(a.From) || math.IsInf(a.From, 0) {
		return fmt.Sprintf("%s: non-finite value %v ignored (using %g)", a.Field, a.From, a.To)
	}
	return fmt.Sprintf("%s: %g clamped to %g", a.Field, a.From, a.To)
}

// DefaultRanges are the slider limits of the forecast panel.
func DefaultRanges() Ranges {
	return Ranges{
		Lambda:       Range{Label: "Day 5 MOI", Unit: "IU/cell", Min: 0.1, Max: 5.5, Step: 0.05},
		DoublingTime: Range{Label: "Cell Doubling Time", Unit: "hours", Min: 10, Max: 72, Step: 0.1},
		SeedDensity:  Range{Label: "Day 0 Cell Density", Unit: "cells/mL", Min: 3e6, Max: 3e7, Step: 1e4},
		BurstSize:    Range{Label: "Day 7 Burst Size", Unit: "vp/cell", Min: 1, Max: 1000, Step: 1},
	}
}

// Clamp returns v limited to [Min, Max]. A non-finite v is rejected and
// fallback is returned instead. The bool reports whether v was changed.
func (r Range) Clamp(v, fallback float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback, true
	}
	c := math.Min(r.Max, math.Max(r.Min, v))
	return c, c != v
}

// Validate checks that the range is usable.
func (r Range) Validate() error {
	switch {
	case math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0):
		return fmt.Errorf("%s: min/max must be finite", r.Label)
	case r.Min > r.Max:
		return fmt.Errorf("%s: min %g exceeds max %g", r.Label, r.Min, r.Max)
	case r.Step < 0:
		return fmt.Errorf("%s: step must be ≥ 0", r.Label)
	}
	return nil
}

// Validate checks every range.
func (rs Ranges) Validate() error {
	for _, r := range []Range{rs.Lambda, rs.DoublingTime, rs.SeedDensity, rs.BurstSize} {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply clamps each input into its range. Rejected non-finite values fall
// back to the corresponding field of fallback.
func (rs Ranges) Apply(in, fallback bioprocess.Inputs) (bioprocess.Inputs, []Adjustment) {
	var adj []Adjustment
	clamp := func(field string, r Range, v, fb float64) float64 {
		c, changed := r.Clamp(v, fb)
		if changed {
			adj = append(adj, Adjustment{Field: field, From: v, To: c})
		}
		return c
	}
	out := bioprocess.Inputs{
		Lambda:            clamp("lambda", rs.Lambda, in.Lambda, fallback.Lambda),
		DoublingTimeHours: clamp("doubling_time", rs.DoublingTime, in.DoublingTimeHours, fallback.DoublingTimeHours),
		SeedDensity:       clamp("seed_density", rs.SeedDensity, in.SeedDensity, fallback.SeedDensity),
		BurstSize:         clamp("burst_size", rs.BurstSize, in.BurstSize, fallback.BurstSize),
	}
	return out, adj
}
