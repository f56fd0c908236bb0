package main

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/drivers/logger"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/utils"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags "-X main.Version=..."
var Version = "develop"

var Tag = "0.0.1-rc"

// app carries what every subcommand needs. Drivers are opened lazily by the
// subcommand that uses them.
type app struct {
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	log            *logrus.Logger
	zapLog         *zap.Logger
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "hmsctl",
		Short:         "Operator tooling for the hospital service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			driverConfig, internalConfig, err := config.Load()
			if err != nil {
				return err
			}
			a.driverConfig = driverConfig
			a.internalConfig = internalConfig
			a.log = logger.NewLogrusLogger(driverConfig, internalConfig)
			a.zapLog = logger.NewZapLogger(driverConfig, internalConfig)
			return nil
		},
	}

	rootCmd.AddCommand(a.migrateCmd())
	rootCmd.AddCommand(a.createAdminCmd())
	rootCmd.AddCommand(a.seedServicesCmd())
	rootCmd.AddCommand(a.mailerCmd())
	rootCmd.AddCommand(a.versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build and API version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\nTag: %s\nAPI: %s\n", Version, Tag, a.internalConfig.App.Version)
		},
	}
}

// commandContext tags the context with a request ID so usecase logs from the
// CLI can be correlated like HTTP requests.
func commandContext(parent context.Context) context.Context {
	return context.WithValue(parent, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
}
