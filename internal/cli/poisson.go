package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"vvforecast-core/poisson"
	"vvforecast/internal/clibase"
	"vvforecast/internal/cmdutil"
	"vvforecast/internal/format"
	"vvforecast/internal/jsonutil"
	"vvforecast/internal/output"
	"vvforecast/internal/writers"
)

// maxKMax bounds the table printed by `poisson`.
const maxKMax = 10_000

func newPoissonCmd(a *app) *cobra.Command {
	c := &clibase.Common{}
	var (
		lambda float64
		k      int
		kMax   int
	)
	cmd := &cobra.Command{
		Use:     "poisson",
		Short:   "Poisson distribution of infection events per cell",
		Example: clibase.PoissonExamples,
		Args:    noArgs,
	}
	fs := cmd.Flags()
	fs.Float64Var(&lambda, "lambda", 3, "multiplicity of infection λ (IU/cell)")
	fs.IntVar(&k, "k", 0, "print only P(X=k)")
	fs.IntVar(&kMax, "k-max", 12, "largest k in the table")
	fs.BoolVar(&c.Strict, "strict", false, "fail on undefined arguments")
	formats := writers.Formats(writers.DistributionWriters)
	clibase.RegisterOutput(fs, c, formats)

	cmd.RunE = func(*cobra.Command, []string) error {
		if err := clibase.AfterParse(c, formats); err != nil {
			return usage(err)
		}
		if !fs.Changed("lambda") {
			lambda = a.cfg.Inputs.Lambda
		}
		if fs.Changed("k") {
			return a.writePMF(c, k, lambda)
		}
		if kMax < 0 || kMax > maxKMax {
			return cmdutil.Usagef("--k-max must be in [0, %d], got %d", maxKMax, kMax)
		}
		if c.Strict {
			if err := poisson.Check(0, lambda); err != nil {
				return err
			}
		}
		d := output.ToAPIDistribution(lambda, kMax)
		if len(d.Terms) == 0 {
			a.log.Warn("lambda is outside the Poisson domain; distribution is empty")
		}
		return writers.WriteDistribution(c.Output, a.stdout, d, writerOptions(c, 0))
	}
	return cmd
}

func (a *app) writePMF(c *clibase.Common, k int, lambda float64) error {
	if c.Strict {
		if err := poisson.Check(k, lambda); err != nil {
			return err
		}
	}
	v := output.ToAPIPMF(k, lambda)
	switch c.Output {
	case output.FormatJSON:
		return jsonutil.EncodePretty(a.stdout, v)
	case output.FormatJSONL:
		return json.NewEncoder(a.stdout).Encode(v)
	}
	p := poisson.PMF(k, lambda)
	_, err := fmt.Fprintf(a.stdout, "P(X=%d; lambda=%s) = %s (%s)\n", k, format.Float(lambda), format.Float(p), format.Percent(p))
	return err
}
