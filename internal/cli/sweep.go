package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vvforecast/internal/clibase"
	"vvforecast/internal/cmdutil"
	"vvforecast/internal/output"
	"vvforecast/internal/sweep"
	"vvforecast/internal/writers"
	"vvforecast/pkg/api"
)

func newSweepCmd(a *app) *cobra.Command {
	c := &clibase.Common{}
	var (
		param   string
		cfg     sweep.Config
		threads int
	)
	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Evaluate the scalar outputs across a range of one input",
		Example: clibase.SweepExamples,
		Args:    noArgs,
	}
	fs := cmd.Flags()
	clibase.RegisterInputs(fs, c)
	fs.StringVar(&param, "param", string(sweep.Lambda), "input to vary: lambda | doubling-time | seed-density | burst-size")
	fs.Float64Var(&cfg.From, "from", 0.1, "first value")
	fs.Float64Var(&cfg.To, "to", 5.5, "last value (inclusive)")
	fs.Float64Var(&cfg.Step, "step", 0.1, "increment")
	fs.IntVarP(&threads, "threads", "t", 0, "worker threads (0=all CPUs)")
	formats := writers.Formats(writers.SweepWriters)
	clibase.RegisterOutput(fs, c, formats)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := clibase.AfterParse(c, formats); err != nil {
			return usage(err)
		}
		p, err := sweep.ParseParam(param)
		if err != nil {
			return usage(err)
		}
		if threads < 0 {
			return cmdutil.Usagef("--threads must be ≥ 0, got %d", threads)
		}
		if _, err := sweep.Grid(cfg.From, cfg.To, cfg.Step); err != nil {
			return usage(err)
		}
		cfg.Param = p
		cfg.Threads = threads
		cfg.Strict = c.Strict

		base := a.inputs(fs, c)
		a.log.Debug("sweep",
			zap.String("param", param), zap.Float64("from", cfg.From),
			zap.Float64("to", cfg.To), zap.Float64("step", cfg.Step))
		rows, err := sweep.Run(cmd.Context(), base, cfg)
		if err != nil {
			return err
		}
		out := make([]api.SweepRowV1, 0, len(rows))
		for _, r := range rows {
			out = append(out, output.ToAPISweepRow(string(p), r.Value, r.Inputs, r.Outputs))
		}
		return writers.WriteSweep(c.Output, a.stdout, out, writerOptions(c, 0))
	}
	return cmd
}
