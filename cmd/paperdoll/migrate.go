package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/paperdoll/internal/config"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	var (
		steps  int
		source string
	)
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back the save schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			m, err := migrate.New(source, cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("creating migrator: %w", err)
			}
			defer m.Close()

			switch {
			case direction == "up" && steps > 0:
				err = m.Steps(steps)
			case direction == "up":
				err = m.Up()
			case steps > 0:
				err = m.Steps(-steps)
			default:
				err = m.Down()
			}
			if err != nil && !errors.Is(err, migrate.ErrNoChange) {
				return fmt.Errorf("migration failed: %w", err)
			}

			version, dirty, _ := m.Version()
			out := cmd.OutOrStdout()
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Fprintf(out, "no changes (version=%d dirty=%v) [%s]\n", version, dirty, time.Since(start))
			} else {
				fmt.Fprintf(out, "migrated %s to version=%d dirty=%v [%s]\n", direction, version, dirty, time.Since(start))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps (0 = all)")
	cmd.Flags().StringVar(&source, "source", "file://migrations", "migration source URL")
	return cmd
}
