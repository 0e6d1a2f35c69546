package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alquimiadental/site/core/locale"
)

var (
	resolveHint   string
	resolveStored string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <path>",
	Short: "Print the canonical localized path for a request path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		res := resolver.ResolvePath(args[0], resolveStored, resolveHint)
		printResolution(cmd, res)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveHint, "hint", "", "Accept-Language value or browser language")
	resolveCmd.Flags().StringVar(&resolveStored, "stored", "", "stored locale preference")
}

func printResolution(cmd *cobra.Command, res locale.Resolution) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path:     %s\n", res.Path())
	fmt.Fprintf(out, "locale:   %s\n", res.Locale)
	fmt.Fprintf(out, "redirect: %t\n", res.RedirectNeeded)
	fmt.Fprintf(out, "reason:   %s\n", res.Reason)
	fmt.Fprintf(out, "source:   %s\n", res.Source)
}
