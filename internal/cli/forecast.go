package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"vvforecast/internal/clibase"
	"vvforecast/internal/output"
	"vvforecast/internal/pretty"
)

var forecastFormats = []string{output.FormatText, output.FormatJSON, output.FormatJSONL}

func newForecastCmd(a *app) *cobra.Command {
	c := &clibase.Common{}
	cmd := &cobra.Command{
		Use:     "forecast",
		Short:   "Day-5 density, infection efficiency, non-productive fraction and yield",
		Example: clibase.ForecastExamples,
		Args:    noArgs,
	}
	fs := cmd.Flags()
	clibase.RegisterInputs(fs, c)
	clibase.RegisterWindow(fs, c)
	clibase.RegisterOutput(fs, c, forecastFormats)

	cmd.RunE = func(*cobra.Command, []string) error {
		if err := clibase.AfterParse(c, forecastFormats); err != nil {
			return usage(err)
		}
		in := a.inputs(fs, c)
		w := c.Window(fs, a.cfg)
		o, pts, err := a.evaluate(in, w, c.Strict)
		if err != nil {
			return err
		}
		switch c.Output {
		case output.FormatJSON:
			return output.WriteForecastJSON(a.stdout, in, w, o, pts)
		case output.FormatJSONL:
			return json.NewEncoder(a.stdout).Encode(output.ToAPIForecast(in, w, o, pts))
		}
		if err := output.WriteSummary(a.stdout, in, o); err != nil {
			return err
		}
		if c.Pretty && len(pts) > 0 {
			if _, err := io.WriteString(a.stdout, "\n"+pretty.RenderSeries(pts, w.InfectionHour)); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
