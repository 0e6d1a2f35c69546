package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alquimiadental/site/core/fallback"
)

var (
	fallbackOut   string
	fallbackBase  string
	fallbackTitle string
)

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Write redirect pages for static hosts into a build directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		if err := fallback.Generate(fallbackOut, fallback.Options{
			BasePath: fallbackBase,
			Catalog:  resolver.Catalog(),
			Title:    fallbackTitle,
			Logger:   log,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fallback pages written to %s\n", fallbackOut)
		return nil
	},
}

func init() {
	fallbackCmd.Flags().StringVar(&fallbackOut, "out", "./dist/browser", "build output directory")
	fallbackCmd.Flags().StringVar(&fallbackBase, "base", "", "public base path, e.g. /AlquimiaDental")
	fallbackCmd.Flags().StringVar(&fallbackTitle, "title", "", "page title")
}
