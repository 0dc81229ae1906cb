package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/improvdex/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "improvdex",
		Short: "Browse and search a catalog of improv games",
		Long: `improvdex serves and queries a read-only catalog of improv games.

Run "improvdex serve" for the HTTP API, or query a catalog file directly:
  improvdex search freeze --difficulty beginner
  improvdex show freeze-tag --theme dark
  improvdex categories`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCmd(),
		newSearchCmd(),
		newShowCmd(),
		newCategoriesCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "improvdex %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
