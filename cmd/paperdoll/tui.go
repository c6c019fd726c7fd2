package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/cory-johannsen/paperdoll/internal/config"
	"github.com/cory-johannsen/paperdoll/internal/frontend/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open a save slot in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := loadEnv(opts.configPath, func(c *config.Config) {
				// The screen owns stdout and stderr.
				if logFile != "" {
					c.Logging.Output = logFile
				}
			})
			if err != nil {
				return err
			}
			defer func() { _ = e.logger.Sync() }()

			ctx := cmd.Context()
			sessions, _, release, err := e.sessions(ctx)
			if err != nil {
				return err
			}
			defer release()
			sess, err := sessions.Open(ctx, opts.slot)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			tui.New(screen, sess, sessions, e.thresholds(), e.logger).Run()
			screen.Fini()

			return sessions.CloseAll(ctx)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "paperdoll.log", "file to write logs to while the screen is open")
	return cmd
}
