package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cory-johannsen/paperdoll/internal/game/presentation"
	"github.com/cory-johannsen/paperdoll/internal/game/stats"
)

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var (
		items  []string
		public bool
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a set of items without touching any save",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts.configPath, nil)
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			for _, id := range items {
				if _, ok := e.catalog.Get(id); !ok {
					return fmt.Errorf("unknown item %q", id)
				}
			}
			pctx := presentation.Context{Public: public, Stats: stats.NewSheet().Presentation()}
			printScore(cmd.OutOrStdout(), e.engine, items, pctx)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&items, "items", nil, "comma-separated item IDs to wear")
	cmd.Flags().BoolVar(&public, "public", false, "score as if out in public")
	return cmd
}

func printScore(w io.Writer, engine *presentation.Engine, items []string, ctx presentation.Context) {
	r := engine.Evaluate(items, ctx)
	outfit := engine.Outfit(items)
	fmt.Fprintf(w, "score:    %d/100 (raw %.1f, adjusted %.1f)\n", r.DisplayScore, r.RawScore, r.Score)
	fmt.Fprintf(w, "read:     %s (%s)\n", r.ReadLabel, r.ReadAs)
	fmt.Fprintf(w, "pass:     %.0f%%\n", r.PassChance*100)
	fmt.Fprintf(w, "exposed:  %t\n", r.IsExposedPublic)
	fmt.Fprintf(w, "outfit:   %s (%s)\n", outfit.Comment, outfit.State)
	fmt.Fprintf(w, "vibes:    %s\n", presentation.VibesText(engine.Vibes(items)))
	if visible := engine.Visible(items); len(visible) < len(items) {
		fmt.Fprintf(w, "visible:  %s\n", strings.Join(visible, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", presentation.ResultText(r, nil))
}
