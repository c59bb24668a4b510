package main

import (
	"github.com/deppfellow/invoice-dashboard/internal/config"
	"github.com/deppfellow/invoice-dashboard/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Invoice dashboard API",
		Long:          "Serves the invoice dashboard read models and invoice mutations, and manages its database.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

// app is what every subcommand starts from.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

// bootstrap loads the configuration and builds the logger. A bad
// configuration is fatal; there is nothing to run without it.
func bootstrap() *app {
	cfg, err := config.LoadConfig()
	if err != nil {
		fallback := logger.NewLogger(config.DefaultObservabilityConfig())
		fallback.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return &app{
		cfg:           cfg,
		log:           log,
		loggerService: loggerService,
	}
}

func (rt *app) close() {
	rt.loggerService.Shutdown()
}
