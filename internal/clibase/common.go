// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/config"
	"vvforecast/internal/output"
)

// Common holds CLI fields shared by the forecast, series and sweep commands.
// Input and window values only take effect when their flag was set; the
// preset (or built-in default) supplies the rest.
type Common struct {
	// Inputs
	Lambda       float64
	DoublingTime float64
	SeedDensity  float64
	BurstSize    float64
	NoClamp      bool
	Strict       bool

	// Window
	InfectionHour float64
	EndHour       float64
	StepHours     float64

	// Output
	Output   string // text|json|jsonl
	Pretty   bool
	Header   bool
	noHeader bool
}

// RegisterInputs wires the model input flags onto fs.
func RegisterInputs(fs *pflag.FlagSet, c *Common) {
	d := bioprocess.DefaultInputs()
	fs.Float64Var(&c.Lambda, "lambda", d.Lambda, "multiplicity of infection λ (IU/cell)")
	fs.Float64Var(&c.DoublingTime, "doubling-time", d.DoublingTimeHours, "cell doubling time (hours)")
	fs.Float64Var(&c.SeedDensity, "seed-density", d.SeedDensity, "seeding density (cells/mL)")
	fs.Float64Var(&c.BurstSize, "burst-size", d.BurstSize, "virus particles per infected cell (vp/cell)")
	fs.BoolVar(&c.NoClamp, "no-clamp", false, "pass inputs through without moving them into the slider ranges")
	fs.BoolVar(&c.Strict, "strict", false, "fail on inputs outside the model domain instead of reporting undefined")
}

// RegisterWindow wires the series window flags onto fs.
func RegisterWindow(fs *pflag.FlagSet, c *Common) {
	d := bioprocess.DefaultWindow()
	fs.Float64Var(&c.InfectionHour, "infection-hour", d.InfectionHour, "hour at which the culture is infected")
	fs.Float64Var(&c.EndHour, "end-hour", d.EndHour, "last sampled hour")
	fs.Float64Var(&c.StepHours, "step-hours", d.StepHours, "sampling interval (hours)")
}

// RegisterOutput wires the output flags onto fs.
func RegisterOutput(fs *pflag.FlagSet, c *Common, formats []string) {
	fs.StringVarP(&c.Output, "output", "o", output.FormatText, "output: "+strings.Join(formats, " | "))
	fs.BoolVar(&c.Pretty, "pretty", false, "append an ASCII chart (text output)")
	fs.BoolVar(&c.noHeader, "no-header", false, "suppress header line")
}

// AfterParse finalizes derived fields and runs shared validation.
func AfterParse(c *Common, formats []string) error {
	c.Header = !c.noHeader
	return Validate(c, formats)
}

// Validate applies shared CLI invariants used by all commands.
func Validate(c *Common, formats []string) error {
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	for _, f := range formats {
		if f == c.Output {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (want %s)", c.Output, strings.Join(formats, " | "))
}

// Inputs overlays the flags that were set onto the preset inputs.
func (c *Common) Inputs(fs *pflag.FlagSet, cfg *config.Config) bioprocess.Inputs {
	in := cfg.ModelInputs()
	if fs.Changed("lambda") {
		in.Lambda = c.Lambda
	}
	if fs.Changed("doubling-time") {
		in.DoublingTimeHours = c.DoublingTime
	}
	if fs.Changed("seed-density") {
		in.SeedDensity = c.SeedDensity
	}
	if fs.Changed("burst-size") {
		in.BurstSize = c.BurstSize
	}
	return in
}

// Window overlays the window flags that were set onto the preset window.
func (c *Common) Window(fs *pflag.FlagSet, cfg *config.Config) bioprocess.Window {
	w := cfg.ModelWindow()
	if fs.Changed("infection-hour") {
		w.InfectionHour = c.InfectionHour
	}
	if fs.Changed("end-hour") {
		w.EndHour = c.EndHour
	}
	if fs.Changed("step-hours") {
		w.StepHours = c.StepHours
	}
	return w
}
