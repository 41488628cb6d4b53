// internal/output/api_conv.go
package output

import (
	"math"

	"vvforecast-core/bioprocess"
	"vvforecast-core/poisson"
	"vvforecast/pkg/api"
)

// number maps NaN/Inf to nil so JSON encodes null.
func number(v float64) api.Number {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ToAPIInputs converts model inputs to the stable wire schema (v1).
func ToAPIInputs(in bioprocess.Inputs) api.InputsV1 {
	return api.InputsV1{
		Lambda:            in.Lambda,
		DoublingTimeHours: in.DoublingTimeHours,
		SeedDensity:       in.SeedDensity,
		BurstSize:         in.BurstSize,
	}
}

// FromAPIInputs is the inverse of ToAPIInputs.
func FromAPIInputs(v api.InputsV1) bioprocess.Inputs {
	return bioprocess.Inputs{
		Lambda:            v.Lambda,
		DoublingTimeHours: v.DoublingTimeHours,
		SeedDensity:       v.SeedDensity,
		BurstSize:         v.BurstSize,
	}
}

func ToAPIWindow(w bioprocess.Window) api.WindowV1 {
	return api.WindowV1{InfectionHour: w.InfectionHour, EndHour: w.EndHour, StepHours: w.StepHours}
}

func FromAPIWindow(v api.WindowV1) bioprocess.Window {
	return bioprocess.Window{InfectionHour: v.InfectionHour, EndHour: v.EndHour, StepHours: v.StepHours}
}

func ToAPIOutputs(o bioprocess.Outputs) api.OutputsV1 {
	return api.OutputsV1{
		Day5CellDensity:       number(o.Day5CellDensity),
		InfectionEfficiency:   number(o.InfectionEfficiency),
		NonProductiveFraction: number(o.NonProductiveFraction),
		ProjectedYield:        number(o.ProjectedYield),
	}
}

func ToAPIPoint(p bioprocess.Point) api.PointV1 {
	return api.PointV1{
		Hour:       p.Hour,
		Day:        p.Day,
		Uninfected: number(p.Uninfected),
		Infected:   number(p.Infected),
		Total:      number(p.Total),
	}
}

// ToAPIForecast assembles a complete v1 forecast. A nil series encodes as [].
func ToAPIForecast(in bioprocess.Inputs, w bioprocess.Window, o bioprocess.Outputs, pts []bioprocess.Point) api.ForecastV1 {
	series := make([]api.PointV1, 0, len(pts))
	for _, p := range pts {
		series = append(series, ToAPIPoint(p))
	}
	return api.ForecastV1{
		Inputs:  ToAPIInputs(in),
		Window:  ToAPIWindow(w),
		Outputs: ToAPIOutputs(o),
		Series:  series,
	}
}

// ToAPIDistribution builds the Poisson table for lambda up to kMax.
func ToAPIDistribution(lambda float64, kMax int) api.DistributionV1 {
	terms := poisson.Distribution(lambda, kMax)
	escaped, infected := poisson.Split(lambda)
	out := api.DistributionV1{
		Lambda:    lambda,
		KMax:      kMax,
		Terms:     make([]api.PoissonTermV1, 0, len(terms)),
		Escaped:   number(escaped),
		Infected:  number(infected),
		Remainder: number(1 - poisson.CDF(kMax, lambda)),
	}
	for _, t := range terms {
		out.Terms = append(out.Terms, api.PoissonTermV1{K: t.K, P: t.P, Percent: t.P * 100})
	}
	return out
}

// ToAPISweepRow converts one sweep result.
func ToAPISweepRow(param string, value float64, in bioprocess.Inputs, o bioprocess.Outputs) api.SweepRowV1 {
	return api.SweepRowV1{Param: param, Value: value, Inputs: ToAPIInputs(in), Outputs: ToAPIOutputs(o)}
}

// ToAPIPMF converts one PMF lookup.
func ToAPIPMF(k int, lambda float64) api.PMFV1 {
	return api.PMFV1{Lambda: lambda, K: k, P: number(poisson.PMF(k, lambda))}
}
