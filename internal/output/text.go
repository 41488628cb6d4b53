// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/format"
	"vvforecast/pkg/api"
)

// WriteSummary prints the readout panel for one forecast.
func WriteSummary(w io.Writer, in bioprocess.Inputs, o bioprocess.Outputs) error {
	var b strings.Builder
	fmt.Fprintf(&b, "MOI (lambda)              %s IU/cell\n", format.Fixed(in.Lambda, 2))
	fmt.Fprintf(&b, "Doubling time             %s\n", format.Hours(in.DoublingTimeHours))
	fmt.Fprintf(&b, "Seed density              %s cells/mL\n", format.Count(in.SeedDensity))
	fmt.Fprintf(&b, "Burst size                %s vp/cell\n", format.Count(in.BurstSize))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Cell density at day 5     %s cells/mL\n", format.Count(o.Day5CellDensity))
	fmt.Fprintf(&b, "Infection efficiency      %s\n", format.Percent(o.InfectionEfficiency))
	fmt.Fprintf(&b, "Non-productive fraction   %s\n", format.Percent(o.NonProductiveFraction))
	fmt.Fprintf(&b, "Projected yield           %s vp/mL\n", format.Yield(o.ProjectedYield))
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatPointRow renders one series row without a trailing newline.
func FormatPointRow(p bioprocess.Point) string {
	return strings.Join([]string{
		format.Float(p.Hour),
		format.Fixed(p.Day, 2),
		format.Fixed(p.Uninfected, 0),
		format.Fixed(p.Infected, 0),
		format.Fixed(p.Total, 0),
	}, "\t")
}

// WriteSeriesTSV prints the series as a table, optionally with header.
func WriteSeriesTSV(w io.Writer, pts []bioprocess.Point, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SeriesTSVHeader); err != nil {
			return err
		}
	}
	for _, p := range pts {
		if _, err := fmt.Fprintln(w, FormatPointRow(p)); err != nil {
			return err
		}
	}
	return nil
}

// WriteDistributionTSV prints P(k) for each term of d.
func WriteDistributionTSV(w io.Writer, d api.DistributionV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, DistributionTSVHeader); err != nil {
			return err
		}
	}
	for _, t := range d.Terms {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", t.K, format.Float(t.P), format.Percent(t.P)); err != nil {
			return err
		}
	}
	return nil
}

// WriteSweepTSV prints one line per grid point.
func WriteSweepTSV(w io.Writer, rows []api.SweepRowV1, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SweepTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Param, format.Float(r.Value),
			numberText(r.Outputs.Day5CellDensity),
			numberText(r.Outputs.InfectionEfficiency),
			numberText(r.Outputs.NonProductiveFraction),
			numberText(r.Outputs.ProjectedYield),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func numberText(n api.Number) string {
	if n == nil {
		return format.Undefined
	}
	return format.Float(*n)
}
