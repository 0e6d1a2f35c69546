package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alquimiadental/site/app/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built site with locale redirects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := site.Load(ctx)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}
