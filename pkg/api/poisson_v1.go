// pkg/api/poisson_v1.go
package api

// PoissonTermV1 is P(X=k).
type PoissonTermV1 struct {
	K       int     `json:"k"`
	P       float64 `json:"p"`
	Percent float64 `json:"percent"`
}

// DistributionV1 is the Poisson table for one λ up to KMax.
// Remainder is the probability mass beyond KMax.
type DistributionV1 struct {
	Lambda    float64         `json:"lambda"`
	KMax      int             `json:"k_max"`
	Terms     []PoissonTermV1 `json:"terms"`
	Escaped   Number          `json:"escaped"`
	Infected  Number          `json:"infected"`
	Remainder Number          `json:"remainder"`
}

// SweepRowV1 is one evaluated grid point of a parameter sweep.
type SweepRowV1 struct {
	Param   string    `json:"param"`
	Value   float64   `json:"value"`
	Inputs  InputsV1  `json:"inputs"`
	Outputs OutputsV1 `json:"outputs"`
}

// PMFV1 is a single P(X=k) lookup. P is null when undefined.
type PMFV1 struct {
	Lambda float64 `json:"lambda"`
	K      int     `json:"k"`
	P      Number  `json:"p"`
}

// ErrorV1 is the body of every non-2xx API response.
type ErrorV1 struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
