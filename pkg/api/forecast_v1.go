// pkg/api/forecast_v1.go
package api

// Number is a float that may be undefined. Undefined encodes as JSON null.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type Number = *float64

// InputsV1 is the stable schema for model parameters.
type InputsV1 struct {
	Lambda            float64 `json:"lambda" yaml:"lambda"`
	DoublingTimeHours float64 `json:"doubling_time_hours" yaml:"doubling_time_hours"`
	SeedDensity       float64 `json:"seed_density" yaml:"seed_density"`
	BurstSize         float64 `json:"burst_size" yaml:"burst_size"`
}

// WindowV1 is the stable schema for series sampling.
type WindowV1 struct {
	InfectionHour float64 `json:"infection_hour" yaml:"infection_hour"`
	EndHour       float64 `json:"end_hour" yaml:"end_hour"`
	StepHours     float64 `json:"step_hours" yaml:"step_hours"`
}

// OutputsV1 carries the scalar readouts.
type OutputsV1 struct {
	Day5CellDensity       Number `json:"day5_cell_density"`
	InfectionEfficiency   Number `json:"infection_efficiency"`
	NonProductiveFraction Number `json:"non_productive_fraction"`
	ProjectedYield        Number `json:"projected_yield"`
}

// PointV1 is one series sample.
type PointV1 struct {
	Hour       float64 `json:"hour"`
	Day        float64 `json:"day"`
	Uninfected Number  `json:"uninfected"`
	Infected   Number  `json:"infected"`
	Total      Number  `json:"total"`
}

// ForecastV1 is the full response of a forecast.
type ForecastV1 struct {
	Inputs  InputsV1  `json:"inputs"`
	Window  WindowV1  `json:"window"`
	Outputs OutputsV1 `json:"outputs"`
	Series  []PointV1 `json:"series"`
}

// ForecastRequestV1 is the POST body accepted by the HTTP API.
type ForecastRequestV1 struct {
	InputsV1
	Window *WindowV1 `json:"window,omitempty"`
}
