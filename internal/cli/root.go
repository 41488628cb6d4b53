// Package cli is the vvforecast command tree.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vvforecast/internal/clibase"
	"vvforecast/internal/cmdutil"
	"vvforecast/internal/config"
	"vvforecast/internal/logging"
	"vvforecast/internal/version"
	"vvforecast/internal/writers"
)

const name = "vvforecast"

// app carries the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	quiet      bool
	verbose    bool
	logJSON    bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           name,
		Short:         "Viral-vector production forecast",
		Long:          clibase.LongDescription(name),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log = logging.New(a.stderr, logging.Options{Verbose: a.verbose, Quiet: a.quiet, JSON: a.logJSON})
			return a.loadConfig()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cmdutil.UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML preset (inputs, window, ranges, server)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&a.verbose, "verbose", false, "log debug detail")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON lines (for serve behind a collector)")

	root.AddCommand(
		newForecastCmd(a),
		newSeriesCmd(a),
		newPoissonCmd(a),
		newSweepCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.configPath == "" {
		cfg := config.Default()
		a.cfg = &cfg
		return nil
	}
	cfg, err := config.LoadFile(a.configPath)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			return err
		}
		return usage(err)
	}
	a.log.Debug("loaded preset", zap.String("path", a.configPath))
	a.cfg = cfg
	return nil
}

func usage(err error) error {
	if err == nil {
		return nil
	}
	return &cmdutil.UsageError{Err: err}
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	return usage(cobra.NoArgs(cmd, args))
}

// RunContext executes argv and returns the process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	a := &app{stdout: outw, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(argv)

	err := root.ExecuteContext(ctx)
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	if err != nil && strings.HasPrefix(err.Error(), "unknown command") {
		err = usage(err)
	}

	code := cmdutil.ExitCode(err)
	if err != nil && code != cmdutil.ExitOK && code != cmdutil.ExitCancelled {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return code
}

// Run is RunContext without cancellation.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.stdout, "%s version %s\n", name, version.Version)
			return err
		},
	}
}

// writerOptions converts the shared output flags.
func writerOptions(c *clibase.Common, infectionHour float64) writers.Options {
	return writers.Options{Header: c.Header, Pretty: c.Pretty, InfectionHour: infectionHour}
}
