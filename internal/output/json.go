// internal/output/json.go
package output

import (
	"io"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/jsonutil"
	"vvforecast/pkg/api"
)

// WriteForecastJSON writes the full v1 forecast (pretty-indented).
func WriteForecastJSON(w io.Writer, in bioprocess.Inputs, win bioprocess.Window, o bioprocess.Outputs, pts []bioprocess.Point) error {
	return jsonutil.EncodePretty(w, ToAPIForecast(in, win, o, pts))
}

// WriteSeriesJSON writes a single JSON array of v1 points.
func WriteSeriesJSON(w io.Writer, pts []bioprocess.Point) error {
	out := make([]api.PointV1, 0, len(pts))
	for _, p := range pts {
		out = append(out, ToAPIPoint(p))
	}
	return jsonutil.EncodePretty(w, out)
}

// WriteDistributionJSON writes the Poisson table for lambda.
func WriteDistributionJSON(w io.Writer, lambda float64, kMax int) error {
	return jsonutil.EncodePretty(w, ToAPIDistribution(lambda, kMax))
}

// WriteSweepJSON writes sweep rows as one JSON array.
func WriteSweepJSON(w io.Writer, rows []api.SweepRowV1) error {
	if rows == nil {
		rows = []api.SweepRowV1{}
	}
	return jsonutil.EncodePretty(w, rows)
}
