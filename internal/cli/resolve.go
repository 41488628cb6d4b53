package cli

import (
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"vvforecast-core/bioprocess"
	"vvforecast/internal/clibase"
)

// inputs resolves preset + flags and, unless disabled, clamps the result
// into the slider ranges. Every adjustment is logged as a warning.
func (a *app) inputs(fs *pflag.FlagSet, c *clibase.Common) bioprocess.Inputs {
	in := c.Inputs(fs, a.cfg)
	if c.NoClamp || !a.cfg.Clamp {
		return in
	}
	out, adj := a.cfg.Ranges.Apply(in, a.cfg.ModelInputs())
	for _, x := range adj {
		a.log.Warn(x.String(), zap.String("field", x.Field))
	}
	return out
}

// evaluate runs the model, failing fast in strict mode.
func (a *app) evaluate(in bioprocess.Inputs, w bioprocess.Window, strict bool) (bioprocess.Outputs, []bioprocess.Point, error) {
	if strict {
		return bioprocess.EvaluateStrict(in, w)
	}
	o, pts := bioprocess.Evaluate(in, w)
	if len(pts) == 0 {
		a.log.Warn("window yields no series points",
			zap.Float64("end_hour", w.EndHour), zap.Float64("step_hours", w.StepHours))
	}
	return o, pts, nil
}
