package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vvforecast/internal/clibase"
	"vvforecast/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	c := &clibase.Common{}
	var addr string
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the forecast API over HTTP",
		Example: clibase.ServeExamples,
		Args:    noArgs,
	}
	fs := cmd.Flags()
	clibase.RegisterInputs(fs, c)
	clibase.RegisterWindow(fs, c)
	fs.StringVar(&addr, "addr", ":8080", "listen address")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if !fs.Changed("addr") {
			addr = a.cfg.Server.Addr
		}
		srv := server.New(server.Config{
			Defaults:  a.inputs(fs, c),
			Window:    c.Window(fs, a.cfg),
			CacheSize: a.cfg.Server.CacheSize,
			Logger:    a.log.Named("http"),
		})
		a.log.Debug("serve", zap.String("addr", addr), zap.Int("cache_size", a.cfg.Server.CacheSize))
		return srv.Run(cmd.Context(), addr, a.cfg.Server.ShutdownTimeout)
	}
	return cmd
}
