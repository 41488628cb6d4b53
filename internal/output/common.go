// internal/output/common.go
package output

// Output format names accepted by the CLI and the writer registry.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// SeriesTSVHeader is the canonical header row for series tables.
// Keep this as the single source of truth; all writers should use it.
const SeriesTSVHeader = "hour\tday\tuninfected\tinfected\ttotal"

// DistributionTSVHeader is the header row for Poisson tables.
const DistributionTSVHeader = "k\tp\tpercent"

// SweepTSVHeader is the header row for parameter sweeps.
const SweepTSVHeader = "param\tvalue\tday5_cell_density\tinfection_efficiency\tnon_productive_fraction\tprojected_yield"
