package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/svfranklindemo/saharan-luma-18022026-43226/config"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/app"
	"github.com/svfranklindemo/saharan-luma-18022026-43226/internal/logging"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Serve the lister HTTP API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot load configuration", err)
			}
			if port != "" {
				cfg.Server.Port = port
			}

			level := cfg.Log.Level
			if rootOpts.Verbose {
				level = "debug"
			}
			logger, err := logging.New(cfg.Server.Environment, level)
			if err != nil {
				return WrapExitError(ExitCommandError, "cannot build logger", err)
			}
			defer func() { _ = logger.Sync() }()

			logger.Info("starting cpl service",
				zap.String("environment", cfg.Server.Environment),
				zap.String("port", cfg.Server.Port))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.NewServer(cfg, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides server.port)")

	return cmd
}
