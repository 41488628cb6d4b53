package cli

import (
	"github.com/spf13/cobra"

	"vvforecast/internal/clibase"
	"vvforecast/internal/writers"
)

func newSeriesCmd(a *app) *cobra.Command {
	c := &clibase.Common{}
	cmd := &cobra.Command{
		Use:     "series",
		Short:   "Uninfected, infected and total cells over the window",
		Example: clibase.SeriesExamples,
		Args:    noArgs,
	}
	fs := cmd.Flags()
	clibase.RegisterInputs(fs, c)
	clibase.RegisterWindow(fs, c)
	formats := writers.Formats(writers.SeriesWriters)
	clibase.RegisterOutput(fs, c, formats)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if err := clibase.AfterParse(c, formats); err != nil {
			return usage(err)
		}
		in := a.inputs(fs, c)
		w := c.Window(fs, a.cfg)
		_, pts, err := a.evaluate(in, w, c.Strict)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		ch, done := writers.StartSeriesWriter(a.stdout, c.Output, writerOptions(c, w.InfectionHour), 64)
		var sendErr error
	send:
		for _, p := range pts {
			if sendErr = ctx.Err(); sendErr != nil {
				break
			}
			select {
			case ch <- p:
			case <-ctx.Done():
				sendErr = ctx.Err()
				break send
			}
		}
		close(ch)
		if werr := <-done; werr != nil {
			return werr
		}
		return sendErr
	}
	return cmd
}
