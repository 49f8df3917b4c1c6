package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workforcepro/terceirizacao-api/internal/pkg/config"
	"github.com/workforcepro/terceirizacao-api/pkg/logger"
)

const serviceName = "terceirizacao-api"

var cfg *config.Config

// rootCmd loads configuration and the logger before any subcommand runs.
var rootCmd = &cobra.Command{
	Use:           "workforce",
	Short:         "Workforce outsourcing records service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  !cfg.IsProduction(),
			Output:  cmd.ErrOrStderr(),
			Service: serviceName,
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, dashboardCmd)
}
