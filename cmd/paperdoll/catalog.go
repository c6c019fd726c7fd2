package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/paperdoll/internal/game/catalog"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the item catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts.configPath, nil)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()
			return printCatalog(cmd.OutOrStdout(), e.catalog, tag)
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list items carrying this tag")
	return cmd
}

func printCatalog(w io.Writer, reg *catalog.Registry, tag string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCATEGORY\tSLOT\tINTENT\tNAME\tTAGS")
	for _, item := range reg.All() {
		info := item.Info()
		if tag != "" && !info.HasTag(tag) {
			continue
		}
		slot, intent := "-", "-"
		if c, ok := catalog.Wearable(item); ok {
			slot, intent = string(c.Slot), string(c.Presentation.Intent)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID, item.Category(), slot, intent, info.Name, strings.Join(info.Tags, ","))
	}
	return tw.Flush()
}
