// Package main is the paperdoll command: REST server, terminal front end and
// content tooling over the same configuration.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	slot       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "paperdoll",
		Short:         "Paper-doll equipment inventory",
		Long:          `paperdoll manages a character's equipped items, inventory and wardrobe and scores how the outfit reads.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "configs/dev.yaml", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.slot, "slot", "default", "save slot to open")

	cmd.AddCommand(
		newServeCmd(opts),
		newTUICmd(opts),
		newScoreCmd(opts),
		newMigrateCmd(opts),
		newCatalogCmd(opts),
	)
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
