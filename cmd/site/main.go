// Command site serves the Alquimia Dental website and provides tools to
// inspect locale routing and prepare static builds.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alquimiadental/site/core/config"
	"github.com/alquimiadental/site/core/locale"
	"github.com/alquimiadental/site/core/logger"
)

var (
	logLevel  string
	logJSON   bool
	log       *slog.Logger
	localeCfg locale.Config
)

var rootCmd = &cobra.Command{
	Use:           "site",
	Short:         "Alquimia Dental site server and locale routing tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		opts := []logger.Option{
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithLevel(logger.ParseLevel(logLevel)),
		}
		if logJSON {
			opts = append(opts, logger.WithJSONFormatter())
		}
		log = logger.New(opts...)

		return config.Load(&localeCfg)
	},
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	rootCmd.AddCommand(serveCmd, resolveCmd, navigateCmd, switchCmd, fallbackCmd)
}

func newResolver() (*locale.Resolver, error) {
	return locale.NewFromConfig(localeCfg)
}
