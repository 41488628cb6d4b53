// core/bioprocess/model.go
package bioprocess

import (
	"vvforecast-core/num"
	"vvforecast-core/poisson"
)

// Fixed timepoints of the run, in hours from Day 0.
const (
	InfectionHour = 120 // Day 5
	FinalHour     = 168 // Day 7
)

// Inputs are the four user-adjustable model parameters.
type Inputs struct {
	Lambda            float64 // MOI: mean infectious events per cell at infection
	DoublingTimeHours float64 // population doubling time (h)
	SeedDensity       float64 // Day-0 density (cells/mL)
	BurstSize         float64 // virus particles per productively infected cell
}

// Outputs are the scalar readouts. Any field may be NaN.
type Outputs struct {
	Day5CellDensity       float64 // cells/mL at InfectionHour
	InfectionEfficiency   float64 // fraction infected, 1 − e^−λ
	NonProductiveFraction float64 // share of FinalHour density from uninfected cells
	ProjectedYield        float64 // vp/mL at FinalHour
}

// DefaultInputs returns the parameters a fresh session starts from.
func DefaultInputs() Inputs {
	return Inputs{Lambda: 3, DoublingTimeHours: 27.7, SeedDensity: 3e6, BurstSize: 100}
}

// Grow returns n0·2^(hours/doublingTime). It is undefined unless all three
// arguments are finite and doublingTime > 0.
func Grow(n0, hours, doublingTime float64) float64 {
	if !num.AllDefined(n0, hours, doublingTime) || doublingTime <= 0 {
		return num.Undefined()
	}
	return num.Mul(n0, num.Pow(2, hours/doublingTime))
}

// InfectedFraction is the share of cells receiving at least one infectious
// event, 1 − P(X=0; λ). Undefined for negative or non-finite λ.
func InfectedFraction(lambda float64) float64 {
	_, infected := poisson.Split(lambda)
	return infected
}

// Summarize derives the scalar outputs.
//
// Infected cells are held constant after infection for the non-productive
// fraction; only the escaped (uninfected) cells keep doubling until FinalHour.
// Series uses a different assumption (7 %/day decay of infected cells) and
// the two are intentionally not reconciled.
func Summarize(in Inputs) Outputs {
	n5 := Grow(in.SeedDensity, InfectionHour, in.DoublingTimeHours)

	infFrac := InfectedFraction(in.Lambda)
	uninfFrac := num.Sub(1, infFrac)

	initInfected := num.Mul(n5, infFrac)
	initUninfected := num.Mul(n5, uninfFrac)

	gf := Grow(1, FinalHour-InfectionHour, in.DoublingTimeHours)
	finalUninfected := num.Mul(initUninfected, gf)

	denom := num.Add(finalUninfected, initInfected)

	return Outputs{
		Day5CellDensity:       n5,
		InfectionEfficiency:   infFrac,
		NonProductiveFraction: num.DivPositive(finalUninfected, denom),
		ProjectedYield:        num.Mul(initInfected, in.BurstSize),
	}
}
